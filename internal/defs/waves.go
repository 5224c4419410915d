// internal/defs/waves.go
package defs

// WaveEntry — квота одного типа врагов в волне.
type WaveEntry struct {
	Type     string `yaml:"type"`
	Count    int    `yaml:"count"`
	Interval int    `yaml:"interval"` // тиков до следующего появления
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Enemies     []WaveEntry `yaml:"enemies"`
	EliteChance float64     `yaml:"elite_chance"`
}

// ProceduralWaves — правила генерации волн после заданных.
type ProceduralWaves struct {
	Types           []string `yaml:"types"`
	BaseTypes       int      `yaml:"base_types"`
	TypesEvery      int      `yaml:"types_every"`
	MaxTypes        int      `yaml:"max_types"`
	BaseCount       int      `yaml:"base_count"`
	CountPerWave    float64  `yaml:"count_per_wave"`
	BaseInterval    int      `yaml:"base_interval"`
	IntervalPerWave int      `yaml:"interval_per_wave"`
	MinInterval     int      `yaml:"min_interval"`
	BaseElite       float64  `yaml:"base_elite"`
	ElitePerWave    float64  `yaml:"elite_per_wave"`
	MaxElite        float64  `yaml:"max_elite"`
}

// WaveTable — содержимое waves.yaml.
type WaveTable struct {
	Waves      []WaveDefinition `yaml:"waves"`
	Procedural ProceduralWaves  `yaml:"procedural"`
}

// TypeCount — сколько разных типов врагов в процедурной волне.
func (p ProceduralWaves) TypeCount(wave int) int {
	n := p.BaseTypes
	if p.TypesEvery > 0 {
		n += wave / p.TypesEvery
	}
	return min(n, p.MaxTypes, len(p.Types))
}

// Count — размер квоты каждого типа.
func (p ProceduralWaves) Count(wave int) int {
	return p.BaseCount + int(float64(wave)*p.CountPerWave)
}

func (p ProceduralWaves) Interval(wave int) int {
	return max(p.MinInterval, p.BaseInterval-wave*p.IntervalPerWave)
}

// EliteChance растёт с каждой волной после заданных и упирается в MaxElite.
func (p ProceduralWaves) EliteChance(wave, predefined int) float64 {
	return min(p.BaseElite+float64(wave-predefined)*p.ElitePerWave, p.MaxElite)
}
