package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return registered, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return found, nil
}
