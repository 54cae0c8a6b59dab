package catalog

// TourStep is one screen of the guided onboarding walkthrough. View names the
// overlay the client should navigate to while the step is shown.
type TourStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	View        string `json:"view"`
	Highlight   string `json:"highlight"`
}

var tourSteps = []TourStep{
	{
		Title:       "Welcome to Four To The Floor",
		Description: "You have entered the definitive archive for Drum & Bass culture. This platform connects the underground through live streams, digital assets, and community vibes.",
		View:        "stream",
		Highlight:   "Main Player",
	},
	{
		Title:       "The Live Stream",
		Description: "This is your window to the world. Watch live sets, interact with the stream using reactions, and earn points just for being locked in.",
		View:        "stream",
		Highlight:   "Video Player",
	},
	{
		Title:       "Your Identity",
		Description: "Your profile is your digital passport. Manage your wallet, view your purchase history, and customize your public MySpace-style page.",
		View:        "profile",
		Highlight:   "Profile Section",
	},
	{
		Title:       "The Drop (Shop)",
		Description: "Spend your hard-earned points or cash on limited edition Asset Packs. Buy emojis to use in the live chat and reacting to the stream.",
		View:        "shop",
		Highlight:   "Shop",
	},
	{
		Title:       "Earn Rewards",
		Description: "Look for the Subscribe button on the player. Subscribing and chatting earns you PTS (Points) which you can redeem for exclusive content.",
		View:        "stream",
		Highlight:   "Rewards",
	},
}

// TourSteps returns the onboarding walkthrough.
func TourSteps() []TourStep {
	out := make([]TourStep, len(tourSteps))
	copy(out, tourSteps)
	return out
}
