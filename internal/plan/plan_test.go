package plan_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mselway/skyrocket/internal/plan"
)

// draw returns a zeroed draw with the given indices set.
func draw(vals map[int]float64) []float64 {
	d := make([]float64, plan.DrawLen)
	for i, v := range vals {
		d[i] = v
	}
	return d
}

var _ = Describe("Generate", func() {
	It("produces an empty plan when the first value is below 100", func() {
		p, consumed := plan.Generate(draw(map[int]float64{0: 99.9}))
		Expect(p).To(BeEmpty())
		Expect(consumed).To(Equal(1))
	})

	It("derives the entry count from the first value", func() {
		p, consumed := plan.Generate(draw(map[int]float64{0: 500}))
		Expect(consumed).To(Equal(15))
		Expect(len(p)).To(BeNumerically("<=", 5))
		Expect(p).To(HaveKey(0))
	})

	It("keys the first entry at tick zero and the rest at value/10", func() {
		d := draw(map[int]float64{
			0: 300,
			1: 155, 2: 420,
			3: 100, 4: 200, 5: 300,
			6: 110, 7: 220, 8: 330,
		})
		p, consumed := plan.Generate(d)
		Expect(consumed).To(Equal(9))
		Expect(p).To(HaveLen(3))
		Expect(p).To(HaveKeyWithValue(0, plan.Thrust{Left: 100, Right: 110}))
		Expect(p).To(HaveKeyWithValue(15, plan.Thrust{Left: 200, Right: 220}))
		Expect(p).To(HaveKeyWithValue(42, plan.Thrust{Left: 300, Right: 330}))
	})

	It("lets later entries overwrite duplicate tick indices", func() {
		d := draw(map[int]float64{
			0: 200,
			1: 7, // floor(7/10) collides with the fixed tick 0
			2: 50, 3: 60,
			4: 70, 5: 80,
		})
		p, _ := plan.Generate(d)
		Expect(p).To(HaveLen(1))
		Expect(p).To(HaveKeyWithValue(0, plan.Thrust{Left: 60, Right: 80}))
	})

	It("never consumes more values than a full draw provides", func() {
		p, consumed := plan.Generate(draw(map[int]float64{0: 999.9}))
		Expect(consumed).To(Equal(27))
		Expect(consumed).To(BeNumerically("<=", plan.DrawLen))
		Expect(len(p)).To(BeNumerically("<=", 9))
	})
})

var _ = Describe("Zip", func() {
	It("truncates to the shorter slice", func() {
		points := []int{0, 10, 20, 30, 40}
		thrusts := []plan.Thrust{{Left: 1}, {Left: 2}, {Left: 3}}
		p := plan.Zip(points, thrusts)
		Expect(p).To(HaveLen(3))
		Expect(p).To(HaveKey(0))
		Expect(p).To(HaveKey(10))
		Expect(p).To(HaveKey(20))
	})

	It("returns an empty plan when either slice is empty", func() {
		Expect(plan.Zip(nil, []plan.Thrust{{Left: 1}})).To(BeEmpty())
		Expect(plan.Zip([]int{1, 2}, nil)).To(BeEmpty())
	})
})
