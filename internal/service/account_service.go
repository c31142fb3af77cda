package service

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/model"
	"Instalytics/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type AccountService interface {
	CreateAccount(ctx context.Context, dto *dto.CreateAccountDTO) (*dto.AccountDTO, error)
	GetAccounts(ctx context.Context) ([]*dto.AccountDTO, error)
	GetAccount(ctx context.Context, igUserID string) (*dto.AccountDTO, error)
	DeleteAccount(ctx context.Context, igUserID string) error
}

type AccountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
	}
}

func (s *AccountServiceImpl) CreateAccount(ctx context.Context, createDTO *dto.CreateAccountDTO) (*dto.AccountDTO, error) {
	findAccount, err := s.accountRepo.GetAccountByIgUserID(ctx, createDTO.IgUserID)
	if err != nil {
		return nil, err
	}
	if findAccount != nil {
		return nil, ErrAccountExist
	}

	account := &model.InstagramAccount{}
	if err = copier.Copy(account, createDTO); err != nil {
		return nil, err
	}
	if err = s.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return toAccountDTO(account)
}

func (s *AccountServiceImpl) GetAccounts(ctx context.Context) ([]*dto.AccountDTO, error) {
	accounts, err := s.accountRepo.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accountDTOList := make([]*dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		accountDTO, err := toAccountDTO(account)
		if err != nil {
			return nil, err
		}
		accountDTOList = append(accountDTOList, accountDTO)
	}
	return accountDTOList, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, igUserID string) (*dto.AccountDTO, error) {
	account, err := s.accountRepo.GetAccountByIgUserID(ctx, igUserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return toAccountDTO(account)
}

func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, igUserID string) error {
	account, err := s.accountRepo.GetAccountByIgUserID(ctx, igUserID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	return s.accountRepo.DeleteAccount(ctx, igUserID)
}

func toAccountDTO(account *model.InstagramAccount) (*dto.AccountDTO, error) {
	accountDTO := &dto.AccountDTO{}
	if err := copier.Copy(accountDTO, account); err != nil {
		return nil, err
	}
	return accountDTO, nil
}
