package collector

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/foldkit/foldkit/collection"
	"github.com/foldkit/foldkit/field"
)

// Joining concatenates strings, separating them with separator.
// No separator is emitted for zero or one element and none trails the result.
func Joining(separator string) *Collector[string, *strings.Builder, string] {
	return New[string, *strings.Builder, string](
		func() *strings.Builder { return &strings.Builder{} },
		func(b *strings.Builder, s string) *strings.Builder {
			b.WriteString(s)
			b.WriteString(separator)
			return b
		},
		func(b1, b2 *strings.Builder) *strings.Builder {
			b1.WriteString(b2.String())
			return b1
		},
		func(b *strings.Builder) string {
			return strings.TrimSuffix(b.String(), separator)
		},
	)
}

// GroupingToSets builds a multimap: every key returned by keys for an element gets the element's value added to its set.
// Partial maps are merged by union of their sets, so membership does not depend on partitioning.
func GroupingToSets[E any, K comparable, V comparable](keys func(E) []K, value func(E) V) *Collector[E, map[K]mapset.Set[V], map[K]mapset.Set[V]] {
	return NewIdentity[E, map[K]mapset.Set[V]](
		func() map[K]mapset.Set[V] { return make(map[K]mapset.Set[V]) },
		func(m map[K]mapset.Set[V], e E) map[K]mapset.Set[V] {
			v := value(e)
			for _, k := range keys(e) {
				valueSet(m, k).Add(v)
			}
			return m
		},
		func(m1, m2 map[K]mapset.Set[V]) map[K]mapset.Set[V] {
			for k, s2 := range m2 {
				s1 := valueSet(m1, k)
				s2.Each(func(v V) bool {
					s1.Add(v)
					return false
				})
			}
			return m1
		},
		Unordered,
	)
}

func valueSet[K comparable, V comparable](m map[K]mapset.Set[V], k K) mapset.Set[V] {
	s, found := m[k]
	if !found {
		// accumulators are confined to a single partition
		s = mapset.NewThreadUnsafeSet[V]()
		m[k] = s
	}
	return s
}

// ToSlice gathers elements in encounter order.
func ToSlice[E any]() *Collector[E, []E, []E] {
	return NewIdentity[E, []E](
		func() []E { return []E{} },
		func(s []E, e E) []E { return append(s, e) },
		func(s1, s2 []E) []E { return append(s1, s2...) },
	)
}

// ToSet gathers the distinct elements.
func ToSet[E comparable]() *Collector[E, mapset.Set[E], mapset.Set[E]] {
	return NewIdentity[E, mapset.Set[E]](
		func() mapset.Set[E] { return mapset.NewThreadUnsafeSet[E]() },
		func(s mapset.Set[E], e E) mapset.Set[E] {
			s.Add(e)
			return s
		},
		func(s1, s2 mapset.Set[E]) mapset.Set[E] { return s1.Union(s2) },
		Unordered,
	)
}

// ToMap builds a map from key to value. Values of elements sharing a key are merged using merge, in encounter order.
func ToMap[E any, K comparable, V any](key func(E) K, value func(E) V, merge func(V, V) V) *Collector[E, map[K]V, map[K]V] {
	put := func(m map[K]V, k K, v V) {
		if existing, found := m[k]; found {
			v = merge(existing, v)
		}
		m[k] = v
	}
	return NewIdentity[E, map[K]V](
		func() map[K]V { return make(map[K]V) },
		func(m map[K]V, e E) map[K]V {
			put(m, key(e), value(e))
			return m
		},
		func(m1, m2 map[K]V) map[K]V {
			for k, v := range m2 {
				put(m1, k, v)
			}
			return m1
		},
	)
}

// Counting counts elements.
func Counting[E any]() *Collector[E, int, int] {
	return SummingInt(func(E) int { return 1 })
}

// SummingInt sums the values f returns for every element.
func SummingInt[E any](f func(E) int) *Collector[E, int, int] {
	return NewIdentity[E, int](
		func() int { return 0 },
		func(sum int, e E) int { return sum + f(e) },
		func(sum1, sum2 int) int { return sum1 + sum2 },
		Unordered,
	)
}

// MinBy returns the smallest element according to less or nil if there is no element.
// On ties, the first element encountered wins.
func MinBy[E any](less func(E, E) bool) *Collector[E, *E, *E] {
	return NewIdentity[E, *E](
		func() *E { return nil },
		func(current *E, e E) *E {
			if current == nil || less(e, *current) {
				return field.ToOptional(e)
			}
			return current
		},
		func(min1, min2 *E) *E {
			if min1 == nil || (min2 != nil && less(*min2, *min1)) {
				return min2
			}
			return min1
		},
	)
}

// Mapping adapts downstream so that it accepts elements of another type by transforming them with mapper first.
func Mapping[E, M, A, R any](mapper collection.MapFunc[E, M], downstream *Collector[M, A, R]) *Collector[E, A, R] {
	c := adapt[E](downstream)
	if c.Supplier != nil && downstream.Accumulator != nil {
		c.Accumulator = func(acc A, e E) A {
			return downstream.Accumulator(acc, mapper(e))
		}
	}
	return c
}

// Filtering adapts downstream so that only elements satisfying predicate are accumulated.
func Filtering[E, A, R any](predicate collection.Predicate[E], downstream *Collector[E, A, R]) *Collector[E, A, R] {
	c := adapt[E](downstream)
	if c.Supplier != nil && downstream.Accumulator != nil {
		c.Accumulator = func(acc A, e E) A {
			if predicate(e) {
				return downstream.Accumulator(acc, e)
			}
			return acc
		}
	}
	return c
}

// adapt copies every stage of downstream but its accumulator.
func adapt[E, M, A, R any](downstream *Collector[M, A, R]) *Collector[E, A, R] {
	if downstream == nil {
		return &Collector[E, A, R]{}
	}
	return &Collector[E, A, R]{
		Supplier:        downstream.Supplier,
		Combiner:        downstream.Combiner,
		Finisher:        downstream.Finisher,
		Characteristics: downstream.Characteristics,
	}
}
