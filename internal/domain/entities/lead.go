package entities

// NotSpecified marks a lead field the ad form did not provide.
const NotSpecified = "не указано"

const (
	UnknownProduct = "Неизвестный продукт"
	LandingSource  = "Лендинг"
)

type Channel string

const (
	ChannelMeta    Channel = "meta"
	ChannelLanding Channel = "landing"
)

// Generation tells whether a Meta form belongs to the campaigns that existed
// before the secondary chat was introduced (old) or to the ones after it (new).
type Generation int

const (
	GenerationOld Generation = iota
	GenerationNew
)

func (g Generation) String() string {
	if g == GenerationNew {
		return "new"
	}
	return "old"
}

// NormalizedLead is built once per request and never mutated afterwards.
type NormalizedLead struct {
	Channel    Channel
	Name       string
	PhoneMain  string
	PhoneExtra string
	// Source is the product label for Meta leads and the landing product
	// name (or LandingSource) for landing leads.
	Source     string
	FormID     string
	Generation Generation
}

func (l NormalizedLead) HasExtraPhone() bool {
	return l.PhoneExtra != ""
}

func (l NormalizedLead) IsNewGeneration() bool {
	return l.Channel == ChannelMeta && l.Generation == GenerationNew
}
