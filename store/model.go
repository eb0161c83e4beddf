// Package store holds the online store dataset (customers, shops and the items they want or sell)
// and the queries run over it.
package store

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item is either an item for sale in a shop or an item a customer wants to buy.
// Items are identified by their name only.
type Item struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Price, validation.Min(0)),
	)
}

func (i Item) GetName() string { return i.Name }

func (i Item) GetPrice() int { return i.Price }

type Customer struct {
	Name      string `yaml:"name"`
	Budget    int    `yaml:"budget"`
	WantToBuy []Item `yaml:"wantToBuy"`
}

func (c Customer) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Budget, validation.Min(0)),
		validation.Field(&c.WantToBuy),
	)
}

func (c Customer) GetName() string { return c.Name }

// WantedItemNames returns the names of the items the customer wants, in order.
func (c Customer) WantedItemNames() []string {
	return itemNames(c.WantToBuy)
}

type Shop struct {
	Name     string `yaml:"name"`
	ItemList []Item `yaml:"itemList"`
}

func (s Shop) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.ItemList),
	)
}

func (s Shop) GetItems() []Item { return s.ItemList }

// Mall is the whole dataset. It is never modified by the queries.
type Mall struct {
	CustomerList []Customer `yaml:"customers"`
	ShopList     []Shop     `yaml:"shops"`
}

func (m *Mall) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.CustomerList),
		validation.Field(&m.ShopList),
	)
}
