package collector_test

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/foldkit/foldkit/collector"
)

func ExampleCollect() {
	joined, err := collector.Collect([]string{"a", "b", "c"}, collector.Joining(","))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(joined)
	// Output: a,b,c
}

func ExampleCollectParallel() {
	words := []string{"fold", "fork", "pencil", "plate", "plane", "pants"}
	byInitial, err := collector.CollectParallel(context.Background(), words, collector.GroupingToSets(
		func(w string) []string { return []string{w[:1]} },
		strings.ToUpper,
	), collector.Workers(3), collector.PartitionSize(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, initial := range []string{"f", "p"} {
		values := byInitial[initial].ToSlice()
		slices.Sort(values)
		fmt.Println(initial, values)
	}
	// Output:
	// f [FOLD FORK]
	// p [PANTS PENCIL PLANE PLATE]
}

func ExampleNew() {
	longest := collector.New[string, string, int](
		func() string { return "" },
		func(current, s string) string {
			if len(s) > len(current) {
				return s
			}
			return current
		},
		nil,
		func(s string) int { return len(s) },
	)
	n, err := collector.Reduce([]string{"plate", "ice cream", "fork"}, longest, false)
	fmt.Println(n, err)
	_, err = collector.Reduce([]string{"plate"}, longest, true)
	fmt.Println(err != nil)
	// Output:
	// 9 <nil>
	// true
}
