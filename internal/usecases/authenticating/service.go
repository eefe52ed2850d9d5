package authenticating

import (
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/pkg/apiErrors"
)

// Tokens opacos de demonstração: nenhuma sessão é criada de fato
const (
	DemoAccessToken  = "demo-token-12345"
	DemoRefreshToken = "demo-refresh-token-12345"
	DemoUserName     = "Usuário Demo"
	DemoUserEmail    = "demo@rinopro.com.br"
)

type Authenticator interface {
	LoginUser(req domain.LoginRequest) (*domain.Session, error)
	RegisterUser(req domain.RegisterRequest) (*domain.Registration, error)
	RefreshToken() *domain.TokenPair
	GetUserProfile() *domain.UserProfile
	ConnectMetaAccount(req domain.MetaConnectRequest) (*domain.MetaConnection, error)
}

type Service struct {
	accountIDs []string
}

// NewService recebe os IDs das contas de anúncio exibidas no perfil e na conexão com o Meta
func NewService(accountIDs []string) Authenticator {
	return &Service{accountIDs: accountIDs}
}

// LoginUser aceita qualquer par email/senha não vazio e ecoa o email na sessão
func (s *Service) LoginUser(req domain.LoginRequest) (*domain.Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, apiErrors.MsgInvalidCredentials)
	}

	return &domain.Session{
		Message:      "Login realizado com sucesso",
		AccessToken:  DemoAccessToken,
		RefreshToken: DemoRefreshToken,
		User: domain.SessionUser{
			Email: req.Email,
			Name:  DemoUserName,
		},
	}, nil
}

func (s *Service) RegisterUser(req domain.RegisterRequest) (*domain.Registration, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, senha e nome são obrigatórios")
	}

	return &domain.Registration{
		Message: "Usuário registrado com sucesso",
		User: domain.SessionUser{
			Email: req.Email,
			Name:  req.Name,
		},
	}, nil
}

func (s *Service) RefreshToken() *domain.TokenPair {
	return &domain.TokenPair{
		AccessToken:  DemoAccessToken,
		RefreshToken: DemoRefreshToken,
	}
}

func (s *Service) GetUserProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Email:         DemoUserEmail,
		Name:          DemoUserName,
		MetaConnected: true,
		Accounts:      s.linkedAccounts(),
	}
}

func (s *Service) ConnectMetaAccount(req domain.MetaConnectRequest) (*domain.MetaConnection, error) {
	if req.AccessToken == "" {
		return nil, NewAuthError(ErrMissingMetaToken, apiErrors.ErrMissingRequiredData, "Token de acesso do Meta é obrigatório")
	}

	return &domain.MetaConnection{
		Connected: true,
		Message:   "Conta Meta conectada com sucesso",
		Accounts:  s.linkedAccounts(),
	}, nil
}

func (s *Service) linkedAccounts() []string {
	accounts := make([]string, len(s.accountIDs))
	copy(accounts, s.accountIDs)
	return accounts
}
