package audio

// Resample converts samples between rates with linear interpolation. Announcer
// clips are short speech, so interpolation quality is sufficient.
func Resample(samples []float32, fromRate, toRate int) []float32 {
	if fromRate <= 0 || toRate <= 0 || fromRate == toRate {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	if len(samples) == 0 {
		return []float32{}
	}

	ratio := float64(fromRate) / float64(toRate)
	length := int(float64(len(samples)) / ratio)
	if length <= 0 {
		return []float32{}
	}

	out := make([]float32, length)
	last := len(samples) - 1
	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= last {
			out[i] = samples[last]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = samples[idx] + frac*(samples[idx+1]-samples[idx])
	}

	return out
}

// ResampleClip returns the clip at the target rate. The input is not modified.
func ResampleClip(clip *Clip, toRate int) *Clip {
	return &Clip{
		Samples:    Resample(clip.Samples, clip.SampleRate, toRate),
		SampleRate: toRate,
	}
}
