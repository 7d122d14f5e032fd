package usecase

import (
	"context"

	"career-compass/internal/domain/career"
)

type CareerUsecase interface {
	List(ctx context.Context) ([]career.Career, error)
}

type Careers struct {
	careers career.Repository
}

func NewCareerUsecase(careers career.Repository) *Careers {
	return &Careers{careers: careers}
}

func (u *Careers) List(ctx context.Context) ([]career.Career, error) {
	out, err := u.careers.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
