package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/containers/containers/avlset"
	"github.com/conneroisu/containers/containers/bounded"
	"github.com/conneroisu/containers/containers/deque"
	"github.com/conneroisu/containers/containers/hashmap"
	"github.com/conneroisu/containers/containers/list"
	"github.com/conneroisu/containers/containers/treemap"
	"github.com/conneroisu/containers/containers/vector"
	"github.com/conneroisu/containers/internal/config"
)

func runVector(_ context.Context, r *recorder) error {
	v := vector.New[string]()
	for _, name := range []string{"gaurav", "neeraj", "rachit", "richa"} {
		v.PushBack(name)
	}
	r.printf("%s", v)

	popped, err := v.PopBack()
	if err != nil {
		return err
	}
	r.printf("%s Popped back", popped)
	r.printf("%s", v)
	r.printf("vector size is %d", v.Len())
	r.printf("vector capacity is %d", v.Cap())
	return nil
}

func runList(_ context.Context, r *recorder) error {
	l := list.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	r.printf("%s", l)

	l.PushFront(0)
	r.printf("%s", l)

	if _, err := l.PopBack(); err != nil {
		return err
	}
	r.printf("%s", l)

	if _, err := l.PopFront(); err != nil {
		return err
	}
	r.printf("%s", l)

	front, err := l.Front()
	if err != nil {
		return err
	}
	back, err := l.Back()
	if err != nil {
		return err
	}
	r.printf("Front: %d", front)
	r.printf("Back: %d", back)
	return nil
}

func runDeque(ctx context.Context, r *recorder) error {
	logger := r.env.Logger.WithComponent("deque")
	d := deque.New[int](deque.WithGrowHook(func(oldCap, newCap int) {
		logger.Debug(ctx, "Indirection table grew", "old_blocks", oldCap, "new_blocks", newCap)
	}))

	d.PushBack(10)
	d.PushBack(20)
	d.PushFront(5)

	front, err := d.Front()
	if err != nil {
		return err
	}
	back, err := d.Back()
	if err != nil {
		return err
	}
	r.printf("Front: %d", front)
	r.printf("Back: %d", back)

	if _, err := d.PopFront(); err != nil {
		return err
	}
	if front, err = d.Front(); err != nil {
		return err
	}
	r.printf("After popping front, front: %d", front)

	if _, err := d.PopBack(); err != nil {
		return err
	}
	if back, err = d.Back(); err != nil {
		return err
	}
	r.printf("After popping back, back: %d", back)
	return nil
}

func runTreeMap(_ context.Context, r *recorder) error {
	m := treemap.New[int, string]()
	m.Insert(10, "ten")
	m.Insert(20, "twenty")
	m.Insert(5, "five")
	m.Insert(15, "fifteen")

	dump := func() {
		for k, v := range m.All() {
			r.printf("%d: %s", k, v)
		}
	}

	r.printf("Before erasing:")
	dump()

	m.Erase(20)
	r.printf("After erasing 20:")
	dump()

	m.Erase(10)
	r.printf("After erasing 10:")
	dump()
	return nil
}

func runAVLSet(_ context.Context, r *recorder) error {
	s := avlset.From(10, 20, 30, 40, 50, 25)

	display := func() string {
		parts := make([]string, 0, s.Len())
		for v := range s.All() {
			parts = append(parts, fmt.Sprint(v))
		}
		return strings.Join(parts, " ")
	}

	r.printf("Set after insertions: %s", display())
	r.printf("Height: %d", s.Height())

	s.Erase(10)
	r.printf("Set after erasing 10: %s", display())

	s.Erase(40)
	r.printf("Set after erasing 40: %s", display())

	return s.Valid()
}

func runHashMap(ctx context.Context, r *recorder) error {
	cfg := r.env.Config.HashMap
	logger := r.env.Logger.WithComponent("hashmap")
	m := hashmap.New[string, int](
		hashmap.WithBuckets(cfg.Buckets),
		hashmap.WithMaxLoadFactor(cfg.MaxLoadFactor),
		hashmap.WithRehashHook(func(oldBuckets, newBuckets int) {
			logger.Debug(ctx, "Rehashed", "old_buckets", oldBuckets, "new_buckets", newBuckets)
		}),
	)

	m.Insert("Alice", 30)
	m.Insert("Bob", 25)
	m.Insert("Charlie", 35)

	if age, ok := m.Get("Bob"); ok {
		r.printf("Bob's age: %d", age)
	} else {
		r.printf("Bob not found!")
	}

	m.Erase("Alice")
	if _, err := m.MustGet("Alice"); err != nil {
		r.expect("MustGet", err)
	}

	*m.At("David") = 40
	r.printf("David's age: %d", *m.At("David"))
	r.printf("Size: %d", m.Len())

	m.Erase("David")
	r.printf("Size: %d", m.Len())
	return nil
}

func runStack(_ context.Context, r *recorder) error {
	s := bounded.NewStack[int](r.env.Config.Bounded.Capacity)

	push := func(vals ...int) {
		for _, v := range vals {
			if err := s.Push(v); err != nil {
				r.expect("Push", err)
				continue
			}
			r.printf("Pushed Element = %d", v)
		}
	}
	pop := func() {
		v, err := s.Pop()
		if err != nil {
			r.expect("Pop", err)
			return
		}
		r.printf("Popped Element = %d", v)
	}

	push(10, 20, 30, 40, 50, 60, 70)
	pop()
	push(80, 90, 71, 73, 79, 62)
	pop()
	pop()
	r.printf("Full: %t", s.IsFull())
	return nil
}

// NewQueue builds the bounded queue design selected by cfg.QueueMode.
func NewQueue[T any](cfg config.BoundedConfig) bounded.Queue[T] {
	if cfg.QueueMode == config.QueueModeCircular {
		return bounded.NewCircularQueue[T](cfg.Capacity)
	}
	return bounded.NewQueue[T](cfg.Capacity)
}

func runQueue(_ context.Context, r *recorder) error {
	q := NewQueue[string](r.env.Config.Bounded)

	enqueue := func(vals ...string) {
		for _, v := range vals {
			if err := q.Enqueue(v); err != nil {
				r.expect("Enqueue", err)
				continue
			}
			r.printf("%s Inserted", v)
		}
	}

	enqueue("gaurav", "neeraj", "vivek", "rachit")
	if v, err := q.Dequeue(); err != nil {
		r.expect("Dequeue", err)
	} else {
		r.printf("%s Deleted", v)
	}
	enqueue("richa")

	if front, err := q.Peek(); err != nil {
		r.expect("Peek", err)
	} else {
		r.printf("Front element is %s size of queue = %d", front, q.Len())
	}

	enqueue("rachit1", "rachit2", "rachit3", "rachit4", "rachit5", "rachit6", "rachit7")
	return nil
}
