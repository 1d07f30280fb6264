package structs

import "nutritrack-go-worker/models"

type AuthResult struct {
	Token            string          `json:"token"`
	Patient          *models.Patient `json:"patient"`
	LastVisitedRoute string          `json:"last_visited_route"`
}
