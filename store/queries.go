package store

import (
	"context"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/foldkit/foldkit/collection"
	"github.com/foldkit/foldkit/collector"
)

func itemNames(items []Item) []string {
	return collection.Map(items, Item.GetName)
}

// CustomerNamesCSV returns the names of every customer, comma separated, in dataset order.
func CustomerNamesCSV(m *Mall) (string, error) {
	return JoinCustomerNames(m, ",")
}

// JoinCustomerNames is similar to CustomerNamesCSV but with a custom separator.
func JoinCustomerNames(m *Mall, separator string) (string, error) {
	return collector.Collect(m.CustomerList, collector.Mapping(Customer.GetName, collector.Joining(separator)))
}

// ItemsToCustomers maps every wanted item name to the names of the customers wanting it.
// Customers are grouped in parallel.
func ItemsToCustomers(ctx context.Context, m *Mall, options ...collector.Option) (map[string]mapset.Set[string], error) {
	return collector.CollectParallel(ctx, m.CustomerList, collector.GroupingToSets(Customer.WantedItemNames, Customer.GetName), options...)
}

// OnSaleItems returns every item listed by any shop, duplicates included.
func OnSaleItems(m *Mall) []Item {
	return collection.FlatMap(m.ShopList, Shop.GetItems)
}

// ItemsNotOnSale returns the sorted names of items some customer wants but no shop sells.
// Items are matched by name: prices and shops are not considered.
func ItemsNotOnSale(m *Mall) []string {
	wanted := collection.FlatMap(m.CustomerList, Customer.WantedItemNames)
	onSale := itemNames(OnSaleItems(m))
	notOnSale := collection.Difference(wanted, onSale)
	slices.Sort(notOnSale)
	return notOnSale
}

// CheapestPrices returns the lowest price of every item on sale, by item name.
func CheapestPrices(m *Mall) (map[string]int, error) {
	return collector.Collect(OnSaleItems(m), collector.ToMap(Item.GetName, Item.GetPrice, func(p1, p2 int) int { return min(p1, p2) }))
}

// NeededMoney returns how much a customer has to spend to buy everything they want at the cheapest prices.
// An item which is not on sale costs nothing.
func NeededMoney(c Customer, cheapest map[string]int) (int, error) {
	return collector.Collect(c.WantToBuy, collector.SummingInt(func(i Item) int {
		return cheapest[i.Name]
	}))
}

// CustomersWithEnoughMoney returns, in dataset order, the names of customers whose budget covers NeededMoney.
func CustomersWithEnoughMoney(m *Mall) (names []string, err error) {
	cheapest, err := CheapestPrices(m)
	if err != nil {
		return
	}
	names = []string{}
	for i := range m.CustomerList {
		customer := m.CustomerList[i]
		needed, subErr := NeededMoney(customer, cheapest)
		if subErr != nil {
			err = subErr
			names = nil
			return
		}
		if customer.Budget >= needed {
			names = append(names, customer.Name)
		}
	}
	return
}
