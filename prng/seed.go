package prng

// goldenGamma is the 64-bit golden-ratio increment used to space the
// per-word inputs of the seed mixer. Any two distinct seeds produce
// at least one differing state word, and nearby seeds diverge
// immediately.
const goldenGamma = 0x9E3779B97F4A7C15

// mixSeed applies the shared avalanche to one increment step of a
// seed scalar.
func mixSeed(z uint64) uint64 {
	z ^= z >> 27
	z *= 0x3C79AC492BA7B653
	z ^= z >> 33
	z *= 0x1C69B3F74AC4AE35
	return z ^ z>>27
}
