package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"nutritrack-go-worker/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrClaimMismatch      = errors.New("user id and phone number do not match records")
	ErrAlreadyClaimed     = errors.New("account already claimed")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionRevoked     = errors.New("session revoked")
)

type AuthService struct {
	Secret   []byte
	TTL      time.Duration
	patients patient.PatientService
}

// NewAuthService reads the signing secret from config. Without one a random
// secret is generated, so tokens do not survive a restart.
func NewAuthService() *AuthService {
	config := utils.GetConfig().Auth
	secret := []byte(config.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(err)
		}
		trackLog.Error("auth.jwt_secret is not set, using a random secret", true)
	}
	ttl := time.Duration(config.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &AuthService{Secret: secret, TTL: ttl}
}

// Login authenticates a claimed account. Unclaimed accounts never match.
func (a *AuthService) Login(userID, password string) (*structs.AuthResult, error) {
	logger := trackLog.WithFields(logrus.Fields{"task": "login", "patient_id": userID})

	entity, err := a.patients.GetPatient(strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			logger.Info("login rejected: unknown patient")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !entity.Claimed() || !utils.CheckPasswordHash(password, *entity.Password) {
		logger.Info("login rejected: password mismatch or unclaimed account")
		return nil, ErrInvalidCredentials
	}

	lastRoute, err := a.latestRoute(entity.UserID)
	if err != nil {
		return nil, err
	}
	return a.openSession(entity, lastRoute)
}

// Claim attaches a name and password to a pre-seeded patient whose phone
// number matches. A fresh session starts without a last visited route.
func (a *AuthService) Claim(param structs.ClaimParam) (*structs.AuthResult, error) {
	if err := ValidateClaim(param); err != nil {
		return nil, err
	}
	logger := trackLog.WithFields(logrus.Fields{"task": "claim", "patient_id": param.UserID})

	entity, err := a.patients.GetPatient(strings.TrimSpace(param.UserID))
	if err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			return nil, ErrClaimMismatch
		}
		return nil, err
	}
	if entity.PhoneNumber != strings.TrimSpace(param.PhoneNumber) {
		logger.Info("claim rejected: phone number mismatch")
		return nil, ErrClaimMismatch
	}
	if entity.Claimed() {
		logger.Info("claim rejected: already claimed")
		return nil, ErrAlreadyClaimed
	}

	hash, err := utils.HashPassword(param.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	name := strings.TrimSpace(param.Name)
	entity.Name = &name
	entity.Password = &hash
	if err := database.DB.Model(entity).Updates(map[string]interface{}{"name": name, "password": hash}).Error; err != nil {
		return nil, fmt.Errorf("claim account: %w", err)
	}
	logger.Info("account claimed")
	return a.openSession(entity, "")
}

func (a *AuthService) openSession(entity *models.Patient, lastRoute string) (*structs.AuthResult, error) {
	now := time.Now()
	expiredAt := now.Add(a.TTL)
	session := models.Session{
		ID:               uuid.New().String(),
		PatientID:        entity.UserID,
		LastVisitedRoute: lastRoute,
		CreatedAt:        &now,
		ExpiredAt:        &expiredAt,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := utils.GenerateJWT(a.Secret, session.ID, entity.UserID, a.TTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &structs.AuthResult{Token: token, Patient: entity, LastVisitedRoute: lastRoute}, nil
}

// latestRoute carries the last visited route across logins; logout clears it.
func (a *AuthService) latestRoute(patientID string) (string, error) {
	var session models.Session
	err := database.DB.Where("patient_id = ? AND revoked_at IS NULL AND expired_at > ?", patientID, time.Now()).
		Order("created_at desc").First(&session).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", nil
	}
	return session.LastVisitedRoute, err
}

// Authenticate resolves a bearer token to its live session.
func (a *AuthService) Authenticate(token string) (*models.Session, error) {
	claims, err := utils.ParseJWT(a.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err.Error())
	}
	session, err := a.session(claims.ID)
	if err != nil {
		return nil, err
	}
	if session.PatientID != claims.Subject {
		return nil, ErrInvalidCredentials
	}
	return session, nil
}

func (a *AuthService) session(sessionID string) (*models.Session, error) {
	var session models.Session
	if err := database.DB.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.RevokedAt != nil {
		return nil, ErrSessionRevoked
	}
	return &session, nil
}

// Logout revokes the session. The last visited route is per patient, so it
// is forgotten on every session the patient holds.
func (a *AuthService) Logout(sessionID string) error {
	session, err := a.session(sessionID)
	if err != nil {
		return err
	}
	tx := database.DB.Begin()
	if err := tx.Model(session).Update("revoked_at", time.Now()).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Session{}).Where("patient_id = ?", session.PatientID).Update("last_visited_route", "").Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (a *AuthService) SaveLastRoute(sessionID, route string) error {
	session, err := a.session(sessionID)
	if err != nil {
		return err
	}
	return database.DB.Model(session).Update("last_visited_route", route).Error
}

func (a *AuthService) LastRoute(sessionID string) (string, error) {
	session, err := a.session(sessionID)
	if err != nil {
		return "", err
	}
	return session.LastVisitedRoute, nil
}
