package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Timezone string          `json:"timezone"`
	Status   AdAccountStatus `json:"status"`
}

type AdAccountList struct {
	Accounts []AdAccount `json:"accounts"`
}

// Paging é sempre um literal fixo: não há paginação real
type Paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

func NewPaging(total int) Paging {
	return Paging{Limit: 50, Offset: 0, Total: total}
}

type AccountInsights struct {
	AccountID  string             `json:"account_id"`
	DatePreset string             `json:"date_preset"`
	Insights   map[string]float64 `json:"insights"`
}

type MetaConnectRequest struct {
	AccessToken string `json:"access_token"`
}

type MetaConnection struct {
	Connected bool     `json:"connected"`
	Message   string   `json:"message"`
	Accounts  []string `json:"accounts"`
}
