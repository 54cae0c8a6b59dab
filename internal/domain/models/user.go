package models

// User is the single locally-simulated actor: identity plus economic state.
// Cash amounts are stored in pence so balance arithmetic stays integral;
// presentation is responsible for rendering pounds.
type User struct {
	ID                 string       `json:"id"`
	Username           string       `json:"username"`
	Email              string       `json:"email"`
	WalletBalance      int          `json:"wallet_balance"` // pence
	Points             int          `json:"points"`
	WalletAddress      string       `json:"wallet_address,omitempty"`
	Bio                string       `json:"bio"`
	ProfileStyle       ProfileStyle `json:"profile_style"`
	Following          []string     `json:"following"`
	SubscribedEventIDs []string     `json:"subscribed_event_ids"`
	IsAdmin            bool         `json:"is_admin"`
	ProfileImage       string       `json:"profile_image,omitempty"`
	Assets             []Asset      `json:"assets"`
	RewardClaimed      bool         `json:"reward_claimed"`
}

// ProfileStyle is the customizable look of the public profile page.
type ProfileStyle struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundImage string `json:"background_image"`
	BorderRadius    string `json:"border_radius"`
	FontFamily      string `json:"font_family"`
}

// IsZero reports whether the style has never been set.
func (p ProfileStyle) IsZero() bool {
	return p == ProfileStyle{}
}

func DefaultProfileStyle() ProfileStyle {
	return ProfileStyle{
		BackgroundColor: "#1c1917",
		TextColor:       "#e7e5e4",
		AccentColor:     "#2dd4bf",
		BackgroundImage: "",
		BorderRadius:    "24px",
		FontFamily:      "Bebas Neue",
	}
}
