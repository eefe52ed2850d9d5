package domain

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session carrega tokens opacos fixos; não há emissão real de tokens
type Session struct {
	Message      string      `json:"message"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         SessionUser `json:"user"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Registration struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}

type UserProfile struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	MetaConnected bool     `json:"meta_connected"`
	Accounts      []string `json:"accounts"`
}
