package domain

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Client is an account holder identified by CPF.
type Client struct {
	mu        sync.RWMutex
	CPF       string
	Name      string
	BirthDate time.Time
	Address   string
	CreatedAt time.Time
	accounts  []*Account
}

func NewClient(cpf string, name string, birthDate time.Time, address string) *Client {
	return &Client{
		CPF:       cpf,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
}

// Submit applies the transaction to the account. Business rules live on
// the account.
func (c *Client) Submit(account *Account, tx Transaction) error {
	return tx.Apply(account)
}

// Execute is Submit returning the resulting balance.
func (c *Client) Execute(account *Account, tx Transaction) (decimal.Decimal, error) {
	return tx.Execute(account)
}

func (c *Client) AddAccount(account *Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, account)
}

func (c *Client) Accounts() []*Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount is the first account opened by the client.
func (c *Client) PrimaryAccount() (*Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.accounts) == 0 {
		return nil, ErrClientHasNoAccount
	}
	return c.accounts[0], nil
}

// Account returns the client's account with the given number.
func (c *Client) Account(number int64) (*Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, account := range c.accounts {
		if account.Number() == number {
			return account, nil
		}
	}
	return nil, ErrRecordNotFound
}
