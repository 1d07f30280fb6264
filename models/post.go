package models

// Post is a cached tweet from the course demo server, or a locally generated
// one while offline. CreatedAt is kept as the server sends it.
type Post struct {
	PostID    string `gorm:"column:post_id;primary_key" json:"postId"`
	UserName  string `gorm:"column:user_name" json:"userName"`
	Subject   string `gorm:"column:subject" json:"subject"`
	Content   string `gorm:"column:content;type:text" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"createdAt"`
}

// TableName sets the insert table name for this struct type
func (p *Post) TableName() string {
	return "posts"
}
