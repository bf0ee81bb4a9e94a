package daynight

// SkyboxSet names the background assets. Sunrise and Sunset are optional;
// an empty string means the asset is absent.
type SkyboxSet struct {
	Day     string `yaml:"day" json:"day"`
	Night   string `yaml:"night" json:"night"`
	Sunrise string `yaml:"sunrise" json:"sunrise"`
	Sunset  string `yaml:"sunset" json:"sunset"`
}

// Resolve picks the asset for a period. A missing sunrise falls back to day,
// a missing sunset falls back to night.
func (s SkyboxSet) Resolve(kind PeriodKind) string {
	switch kind {
	case Sunrise:
		if s.Sunrise != "" {
			return s.Sunrise
		}
		return s.Day
	case Day:
		return s.Day
	case Sunset:
		if s.Sunset != "" {
			return s.Sunset
		}
		return s.Night
	default:
		return s.Night
	}
}

// SkyboxSelector tracks the active background asset.
type SkyboxSelector struct {
	set    SkyboxSet
	active string
}

// NewSkyboxSelector creates a selector with no active asset.
func NewSkyboxSelector(set SkyboxSet) *SkyboxSelector {
	return &SkyboxSelector{set: set}
}

// Update resolves the asset for kind and makes it active. changed is true only
// when the resolved asset is non-empty and differs from the active one.
func (s *SkyboxSelector) Update(kind PeriodKind) (asset string, changed bool) {
	target := s.set.Resolve(kind)
	if target == "" || target == s.active {
		return s.active, false
	}
	s.active = target
	return target, true
}

// Active returns the current asset, empty until the first change.
func (s *SkyboxSelector) Active() string {
	return s.active
}
