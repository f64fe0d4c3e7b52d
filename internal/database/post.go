package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/campus-connect/internal/models"
	"gorm.io/gorm"
)

func (d *Database) SavePost(post *models.Post) error {
	return d.db.Create(post).Error
}

// GetPost возвращает пост с автором, лайками и комментариями
func (d *Database) GetPost(id string) (*models.Post, error) {
	var post models.Post
	err := d.db.
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments.Author").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *Database) UpdatePost(post *models.Post) error {
	return d.db.Save(post).Error
}

func (d *Database) DeletePost(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&post).Association("Likes").Clear(); err != nil {
			return err
		}

		if err := tx.Delete(&models.Comment{}, "post_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&post).Error
	})
}

// LatestPosts отдает ленту: новые сверху, не больше limit
func (d *Database) LatestPosts(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.
		Order("created_at DESC").
		Limit(limit).
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments.Author").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// TogglePostLike переключает лайк: решение принимается по текущему
// состоянию join-таблицы, а не по копии в памяти
func (d *Database) TogglePostLike(postID, userID uuid.UUID) (*models.Post, bool, error) {
	var post models.Post
	if err := d.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, false, err
	}

	var user models.User
	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, false, err
	}

	var count int64
	if err := d.db.Table("post_likes").
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return nil, false, err
	}

	liked := count == 0
	if liked {
		if err := d.db.Model(&post).Association("Likes").Append(&user); err != nil {
			return nil, false, err
		}
	} else {
		if err := d.db.Model(&post).Association("Likes").Delete(&user); err != nil {
			return nil, false, err
		}
	}

	updated, err := d.GetPost(postID.String())
	if err != nil {
		return nil, false, err
	}

	return updated, liked, nil
}

// AddComment добавляет комментарий и возвращает обновленный пост
func (d *Database) AddComment(postID, authorID uuid.UUID, content string) (*models.Post, error) {
	var post models.Post
	if err := d.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := d.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return d.GetPost(postID.String())
}
