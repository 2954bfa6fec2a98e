package parameter

// LandmarkActivationRadius is the proximity highlight distance shared by all stations
const LandmarkActivationRadius = 15.0

// LandmarkDefault is one built-in station
// CardRadius gates the station's interaction card, it is independent of the activation radius
type LandmarkDefault struct {
	ID         string
	Title      string
	Summary    string
	X, Y, Z    float64
	CardRadius float64
}

// DefaultLandmarks lists the stations in iteration order, the order is the proximity tie-break
var DefaultLandmarks = []LandmarkDefault{
	{
		ID:         "about",
		Title:      "About",
		Summary:    "Who is flying this ship",
		X:          0,
		Y:          0,
		Z:          -60,
		CardRadius: 70,
	},
	{
		ID:         "projects",
		Title:      "Projects",
		Summary:    "Things built and shipped",
		X:          35,
		Y:          0,
		Z:          -100,
		CardRadius: 100,
	},
	{
		ID:         "skills",
		Title:      "Skills",
		Summary:    "Tools and languages on board",
		X:          -40,
		Y:          0,
		Z:          -130,
		CardRadius: 120,
	},
	{
		ID:         "contact",
		Title:      "Contact",
		Summary:    "Open a channel",
		X:          20,
		Y:          10,
		Z:          -170,
		CardRadius: 150,
	},
}
