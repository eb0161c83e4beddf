package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/commonerrors/errortest"
)

func TestClassicOnlineStore(t *testing.T) {
	m, err := ClassicOnlineStore()
	require.NoError(t, err)
	assert.Len(t, m.CustomerList, 10)
	assert.Len(t, m.ShopList, 5)
	assert.NoError(t, m.Validate())

	other, err := ClassicOnlineStore()
	require.NoError(t, err)
	other.CustomerList[0].Name = faker.Name()
	assert.Equal(t, "Joe", m.CustomerList[0].Name)
}

func TestLoadMallFromFile(t *testing.T) {
	m, err := LoadMallFromFile(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	require.Len(t, m.CustomerList, 2)
	assert.Equal(t, Customer{Name: "Amy", Budget: 5, WantToBuy: []Item{{Name: "onion", Price: 2}}}, m.CustomerList[1])

	names, err := CustomersWithEnoughMoney(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chris", "Amy"}, names)
	assert.Equal(t, []string{"plane"}, ItemsNotOnSale(m))

	_, err = LoadMallFromFile(filepath.Join("testdata", "invalid.yaml"))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	_, err = LoadMallFromFile(filepath.Join(t.TempDir(), faker.Word()+".yaml"))
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
}

func TestLoadMallErrors(t *testing.T) {
	_, err := LoadMall(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = LoadMall(strings.NewReader("customers: [{name: Joe, unknown: 3}]"))
	errortest.AssertError(t, err, commonerrors.ErrMarshalling)
	_, err = LoadMall(strings.NewReader("shops: [{name: Market, itemList: [{name: onion, price: -2}]}]"))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestLoadMallFromFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join(faker.Word(), "mall.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte(`shops:
  - name: Market
    itemList:
      - {name: onion, price: 2}
      - {name: onion, price: 1}
`), 0600))
	m, err := LoadMallFromFS(fs, path)
	require.NoError(t, err)
	assert.Empty(t, m.CustomerList)
	prices, err := CheapestPrices(m)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"onion": 1}, prices)

	_, err = LoadMallFromFS(fs, faker.Word())
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	_, err = LoadMallFromFS(nil, path)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = LoadMallFromFS(embeddedFS, classicDatasetPath)
	require.NoError(t, err)
}
