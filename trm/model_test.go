package trm

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/treeowl/typerep-map/typeid"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./trm -run TestRandomizedModelProperty -count=1
//   - Fuzz test for this file:
//     go test ./trm -run '^$' -fuzz FuzzRandomizedModelProperty -fuzztime=10s

type mk0 int
type mk1 string
type mk2 float64
type mk3 struct{ n int }
type mk4 bool

// modelOp pairs a map operation with the equivalent update of a plain
// fingerprint-keyed model map.
type modelOp struct {
	apply func(Map, int) Map
	model func(map[typeid.ID]any, int)
}

func opsForKey[K any](conv func(int) K) []modelOp {
	id := typeid.Of[K]()
	return []modelOp{
		{ // insert
			apply: func(m Map, v int) Map { return Insert[K, K](m, conv(v)) },
			model: func(mod map[typeid.ID]any, v int) { mod[id] = conv(v) },
		},
		{ // delete
			apply: func(m Map, _ int) Map { return Delete[K](m) },
			model: func(mod map[typeid.ID]any, _ int) { delete(mod, id) },
		},
		{ // adjust
			apply: func(m Map, v int) Map {
				return Adjust[K, K](m, func(K) K { return conv(v) })
			},
			model: func(mod map[typeid.ID]any, v int) {
				if _, ok := mod[id]; ok {
					mod[id] = conv(v)
				}
			},
		},
		{ // alter: insert on even payloads, delete on odd ones
			apply: func(m Map, v int) Map {
				return Alter[K, K](m, func(_ K, _ bool) (K, bool) {
					return conv(v), v%2 == 0
				})
			},
			model: func(mod map[typeid.ID]any, v int) {
				if v%2 == 0 {
					mod[id] = conv(v)
				} else {
					delete(mod, id)
				}
			},
		},
	}
}

func allModelOps() []modelOp {
	var ops []modelOp
	ops = append(ops, opsForKey(func(v int) mk0 { return mk0(v) })...)
	ops = append(ops, opsForKey(func(v int) mk1 { return mk1(strconv.Itoa(v)) })...)
	ops = append(ops, opsForKey(func(v int) mk2 { return mk2(v) / 2 })...)
	ops = append(ops, opsForKey(func(v int) mk3 { return mk3{n: v} })...)
	ops = append(ops, opsForKey(func(v int) mk4 { return v%3 == 0 })...)
	return ops
}

func assertMapMatchesModel(t *testing.T, m Map, model map[typeid.ID]any) {
	t.Helper()
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if m.Size() != len(model) {
		t.Fatalf("size mismatch: got=%d want=%d", m.Size(), len(model))
	}
	for id, v := range m.All() {
		want, ok := model[id]
		if !ok {
			t.Fatalf("map holds %s, model does not", id)
		}
		if !reflect.DeepEqual(v, want) {
			t.Fatalf("value mismatch for %s: got=%v want=%v", id, v, want)
		}
	}
}

func runRandomModelSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	ops := allModelOps()
	m := Empty()
	model := make(map[typeid.ID]any)

	for i := 0; i < steps; i++ {
		op := ops[r.Intn(len(ops))]
		v := r.Intn(1000)
		m = op.apply(m, v)
		op.model(model, v)
		assertMapMatchesModel(t, m, model)
	}
}

func TestRandomizedModelProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomModelSequence(t, seed, 120)
		})
	}
}

func FuzzRandomizedModelProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomModelSequence(t, seed, int(steps%120)+1)
	})
}
