package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"signlearn_backend/internal/config"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UserService interface {
	GetByID(id uuid.UUID) (*dto.UserInfo, error)
	List(limit, offset int) (*dto.UserListResponse, error)
	Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserInfo, error)
	Delete(id uuid.UUID) error
	UploadProfilePicture(id uuid.UUID, file *multipart.FileHeader) (string, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repositories.UserRepository, cfg *config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, cfg: cfg}
}

func (s *UserServiceImpl) GetByID(id uuid.UUID) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return dto.UserInfoFrom(user), nil
}

func (s *UserServiceImpl) List(limit, offset int) (*dto.UserListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *dto.UserInfoFrom(&users[i]))
	}
	return &dto.UserListResponse{Users: infos, Total: total}, nil
}

func (s *UserServiceImpl) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Birthday != nil {
		user.Birthday = req.Birthday
	}
	if req.Role != "" {
		role, roleErr := s.userRepo.FindRoleByName(req.Role)
		if roleErr != nil {
			return nil, apperrors.NewBadRequestError("Unknown role: " + req.Role)
		}
		user.RoleID = role.ID
		user.Role = role
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return dto.UserInfoFrom(user), nil
}

func (s *UserServiceImpl) Delete(id uuid.UUID) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}
	return nil
}

// UploadProfilePicture stores the image on disk and records its public
// URL on the user. Allowed extensions and max size come from config.
func (s *UserServiceImpl) UploadProfilePicture(id uuid.UUID, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.ErrDatabase(err)
	}

	if file.Size > s.cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File too large, max %d bytes", s.cfg.Upload.MaxSize))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, a := range s.cfg.Upload.AllowedTypes {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", apperrors.NewBadRequestError("Unsupported file type: " + ext)
	}

	if err := os.MkdirAll(s.cfg.Upload.BasePath, 0o755); err != nil {
		return "", apperrors.InternalError(err)
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst := filepath.Join(s.cfg.Upload.BasePath, name)
	if err := saveUploadedFile(file, dst); err != nil {
		return "", apperrors.InternalError(err)
	}

	url := fmt.Sprintf("%s/uploads/%s", s.cfg.App.BaseURL, name)
	user.ProfilePictureURL = url
	if err := s.userRepo.Update(user); err != nil {
		return "", apperrors.ErrDatabase(err)
	}
	return url, nil
}

func saveUploadedFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
