package post

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LocalTimeLayout renders HH:mm:ss dd-MM-yyyy.
const LocalTimeLayout = "15:04:05 02-01-2006"

var (
	localUserNames = []string{
		"John Smith", "Emma Wilson", "Michael Brown",
		"Sophia Johnson", "Robert Davis", "Olivia Jones",
	}
	localTemplates = []string{
		"Just had an amazing experience with %s!",
		"Does anyone else think %s is overrated?",
		"I can't believe what's happening in %s right now",
		"Looking for recommendations about %s",
		"My thoughts on %s: absolutely fascinating!",
		"Today I learned something new about %s",
	}
)

// remotePost mirrors the tweet server payload, where any field may be missing.
type remotePost struct {
	PostID    *string `json:"postId"`
	UserName  *string `json:"userName"`
	Subject   *string `json:"subject"`
	Content   *string `json:"content"`
	CreatedAt *string `json:"createdAt"`
}

func (r remotePost) toModel() models.Post {
	return models.Post{
		PostID:    orDefault(r.PostID, ""),
		UserName:  orDefault(r.UserName, "Unknown User"),
		Subject:   orDefault(r.Subject, "No Subject"),
		Content:   orDefault(r.Content, ""),
		CreatedAt: orDefault(r.CreatedAt, ""),
	}
}

func orDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

// PostService serves posts from the tweet server when it can be reached and
// from the local cache otherwise.
type PostService struct {
	BaseURL   string
	Reachable func(ctx context.Context) bool
	Now       func() time.Time
}

func NewPostService() *PostService {
	p := &PostService{BaseURL: utils.GetConfig().Tweet.BaseURL, Now: time.Now}
	p.Reachable = p.dial
	return p
}

func (p *PostService) dial(ctx context.Context) bool {
	target, err := url.Parse(p.BaseURL)
	if err != nil || target.Host == "" {
		return false
	}
	host := target.Host
	if target.Port() == "" {
		if target.Scheme == "https" {
			host = net.JoinHostPort(target.Hostname(), "443")
		} else {
			host = net.JoinHostPort(target.Hostname(), "80")
		}
	}
	dialer := net.Dialer{Timeout: 3 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", host)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (p *PostService) online(ctx context.Context) bool {
	return p.Reachable != nil && p.Reachable(ctx)
}

func (p *PostService) endpoint(path string) string {
	return strings.TrimRight(p.BaseURL, "/") + path
}

// All returns the remote posts, cached locally, or the local posts when the
// server cannot be reached. It never fails; the worst case is an empty list.
func (p *PostService) All(ctx context.Context) []models.Post {
	logger := trackLog.WithFields(logrus.Fields{"task": "posts"})
	if p.online(ctx) {
		posts, err := p.Sync(ctx)
		if err == nil {
			return posts
		}
		logger.Error("fetch tweets: ", err.Error())
	}
	posts, err := p.Local()
	if err != nil {
		logger.Error("local posts: ", err.Error())
		return []models.Post{}
	}
	return posts
}

// Sync fetches the remote posts and upserts them into the local cache.
func (p *PostService) Sync(ctx context.Context) ([]models.Post, error) {
	body, err := services.HttpRequest(ctx, http.MethodGet, p.endpoint("/api/tweets"), nil, nil)
	if err != nil {
		return nil, err
	}
	var remote []remotePost
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil, fmt.Errorf("decode tweets: %w", err)
	}

	posts := make([]models.Post, 0, len(remote))
	for _, r := range remote {
		posts = append(posts, r.toModel())
	}

	tx := database.DB.Begin()
	for i := range posts {
		if posts[i].PostID == "" {
			continue
		}
		if err := tx.Save(&posts[i]).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("cache tweet %s: %w", posts[i].PostID, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Local returns cached posts, newest first.
func (p *PostService) Local() ([]models.Post, error) {
	posts := []models.Post{}
	err := database.DB.Order("created_at desc").Find(&posts).Error
	return posts, err
}

// Create asks the server for a new post, or makes a local one while offline,
// and returns the refreshed list.
func (p *PostService) Create(ctx context.Context) ([]models.Post, error) {
	if p.online(ctx) {
		if _, err := services.HttpRequest(ctx, http.MethodPost, p.endpoint("/api/tweets/new"), nil, nil); err != nil {
			return nil, fmt.Errorf("create tweet: %w", err)
		}
		return p.All(ctx), nil
	}

	local := p.localPost()
	if err := database.DB.Create(&local).Error; err != nil {
		return nil, fmt.Errorf("save local post: %w", err)
	}
	trackLog.WithFields(logrus.Fields{"task": "posts", "post_id": local.PostID}).Info("local post created")
	return p.All(ctx), nil
}

func (p *PostService) localPost() models.Post {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	subject := "Local Post"
	return models.Post{
		PostID:    uuid.New().String(),
		UserName:  localUserNames[rand.Intn(len(localUserNames))],
		Subject:   subject,
		Content:   fmt.Sprintf(localTemplates[rand.Intn(len(localTemplates))], strings.ToLower(subject)),
		CreatedAt: now().Format(LocalTimeLayout),
	}
}

// DeleteAll clears the local cache only.
func (p *PostService) DeleteAll() error {
	return database.DB.Delete(&models.Post{}).Error
}
