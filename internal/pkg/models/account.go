package models

// Credential represents a registered client identity. Password holds a
// bcrypt hash, never the cleartext secret. BearToken is the opaque bearer
// token issued at registration and reissued on demand.
type Credential struct {
	Username  string `json:"username" db:"username"`
	Password  string `json:"password" db:"password"`
	BearToken string `json:"bear_token" db:"bear_token"`
}

// LoginRequest is the registration/login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResult carries the freshly issued token plus any ledger history
// already recorded under the registered username.
type RegisterResult struct {
	BearToken   string
	TopUps      []TopUp
	ClientBanks []BankAccount
}

// AdminDump is the full cross-client record dump served to the
// administrative surface.
type AdminDump struct {
	Users       []Credential  `json:"users"`
	TopUps      []TopUp       `json:"topups"`
	ClientBanks []BankAccount `json:"client_banks"`
}
