package usecase

import (
	"context"
	"errors"
	"testing"

	"payflow/internal/domain/entities"
	mock_interfaces "payflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRequestVerifier_Verify(t *testing.T) {
	t.Run("empty token id", func(t *testing.T) {
		v := NewRequestVerifier(nil)
		_, err := v.Verify(context.Background(), "   ")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("unknown token id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITokenRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "tok-ghost").Return(nil, nil)

		v := NewRequestVerifier(repo)
		_, err := v.Verify(context.Background(), "tok-ghost")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("storage error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITokenRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "tok-1").Return(nil, errors.New("ddb down"))

		v := NewRequestVerifier(repo)
		_, err := v.Verify(context.Background(), "tok-1")
		if err == nil || errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("known token id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITokenRepository(ctrl)
		token := &entities.Token{ID: "tok-1", GatewayName: "offline"}
		repo.EXPECT().GetByID(gomock.Any(), "tok-1").Return(token, nil)

		v := NewRequestVerifier(repo)
		got, err := v.Verify(context.Background(), " tok-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != token {
			t.Fatalf("expected the stored token, got %+v", got)
		}
	})
}

func TestRequestVerifier_Invalidate(t *testing.T) {
	t.Run("nil token is a no-op", func(t *testing.T) {
		v := NewRequestVerifier(nil)
		if err := v.Invalidate(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeated invalidation succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITokenRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), "tok-1").Return(nil).Times(2)

		v := NewRequestVerifier(repo)
		token := &entities.Token{ID: "tok-1"}
		if err := v.Invalidate(context.Background(), token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := v.Invalidate(context.Background(), token); err != nil {
			t.Fatalf("second invalidation must succeed, got %v", err)
		}
	})
}
