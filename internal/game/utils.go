package game

func f32(v float64) float32 { return float32(v) }
