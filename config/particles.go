package config

// ParticleKind identifies a particle burst effect
type ParticleKind int

const (
	ParticleCollect ParticleKind = iota
	ParticleWalkDust
)
