package metrics

import "github.com/san-kum/wirecube/internal/scene"

type MeanWidth struct {
	name    string
	sum     float64
	samples int
}

func NewMeanWidth() *MeanWidth {
	return &MeanWidth{name: "mean_width"}
}

func (w *MeanWidth) Name() string { return w.name }

func (w *MeanWidth) Observe(f scene.Frame) {
	w.sum += f.Width()
	w.samples++
}

func (w *MeanWidth) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return w.sum / float64(w.samples)
}

func (w *MeanWidth) Reset() {
	w.sum = 0
	w.samples = 0
}
