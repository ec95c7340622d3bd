package gostreams

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Map(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) int {
		is.Equal(index, uint64(elem-1))

		return elem * 2
	})

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{2, 4, 6, 8, 10})
}

func TestMap_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Map(ints, func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) int {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return 0
		}

		return elem * 2
	})

	result, err := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{2, 4})
	is.True(errors.Is(err, context.Canceled))
}

func TestMap_FuncMapper(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	strs := Map(Produce([]int{1, 2, 3}), FuncMapper(strconv.Itoa))

	result, err := ReduceSlice(ctx, strs)

	is.NoErr(err)
	is.Equal(result, []string{"1", "2", "3"})
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Filter(ints, even)

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{2, 4})
}

func TestFilter_Index(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	indexes := []uint64{}

	ints := Filter(Produce([]int{1, 2, 3, 4, 5}), func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
		indexes = append(indexes, index)
		return elem > 3
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{4, 5})
	is.Equal(indexes, []uint64{0, 1, 2, 3, 4})
}

func TestFilter_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	evenCancel := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) bool {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return false
		}

		return elem%2 == 0
	}

	ints = Filter(ints, evenCancel)

	result, err := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{2})
	is.True(errors.Is(err, context.Canceled))
}

func TestFilter_FuncPredicate(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Filter(Produce([]int{1, 2, 3, 4, 5}), FuncPredicate(func(elem int) bool {
		return elem%2 != 0
	}))

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{1, 3, 5})
}

func TestPeek(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	ints = Peek(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	})

	_, _ = Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(sum, 15)
}

func TestPeek_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	ints = Peek(ints, func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return
		}

		sum += elem
	})

	_, err := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(sum, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestLimit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Limit(ints, 3)

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{1, 2, 3})
}

func TestLimit_Zero(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	pulled := 0

	ints := Peek(Produce([]int{1, 2, 3}), func(_ context.Context, _ context.CancelCauseFunc, _ int, _ uint64) {
		pulled++
	})

	result, err := ReduceSlice(ctx, Limit(ints, 0))

	is.NoErr(err)
	is.Equal(len(result), 0)
	is.Equal(pulled, 0)
}

func TestLimit_BeforeFilter(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Filter(Limit(Produce([]int{1, 3, 5, 2, 4, 6}), 4), even)

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2})
}

func TestLimit_MoreThanAvailable(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := ReduceSlice(ctx, Limit(Produce([]int{1, 2}), 10))

	is.Equal(result, []int{1, 2})
}

func TestSkip(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Skip(ints, 2)

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{3, 4, 5})
}

func TestDistinct(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Distinct(Produce([]int{3, 1, 3, 2, 1}))

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{3, 1, 2})
}

func TestSort(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{3, 1, 2, 4, 5})

	ints = Sort(ints, func(_ context.Context, _ context.CancelCauseFunc, a int, b int) bool {
		return a < b
	})

	result, _ := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestIdentity(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := ReduceSlice(ctx, Map(Produce([]string{"a", "b"}), Identity[string]()))

	is.Equal(result, []string{"a", "b"})
}
