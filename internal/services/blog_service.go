package services

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type BlogService interface {
	CreatePost(post *models.BlogPost) error
	GetPost(id uint) (*models.BlogPost, error)
	GetPublishedPostBySlug(slug string) (*models.BlogPost, error)
	ListPosts(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error)
	UpdatePost(post *models.BlogPost) error
	PublishPost(id uint) error
	DeletePost(id uint) error
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) CreatePost(post *models.BlogPost) error {
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return s.blogRepo.Create(post)
}

func (s *blogService) GetPost(id uint) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *blogService) GetPublishedPostBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.IsPublished {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *blogService) ListPosts(publishedOnly bool, limit, offset int) ([]models.BlogPost, int64, error) {
	return s.blogRepo.List(publishedOnly, limit, offset)
}

func (s *blogService) UpdatePost(post *models.BlogPost) error {
	return s.blogRepo.Update(post)
}

func (s *blogService) PublishPost(id uint) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	post.IsPublished = true
	now := time.Now()
	post.PublishedAt = &now
	return s.blogRepo.Update(post)
}

func (s *blogService) DeletePost(id uint) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	return s.blogRepo.Delete(id)
}
