package newmodule

// skyboxImages are the skybox textures, relative to the shared multimedia root
var skyboxImages = [...]string{
	"/images/skyboxes/sky_water+6.jpg",
	"/images/skyboxes/sky_dust+6.jpg",
	"/images/skyboxes/sky_mountains+6.jpg",
	"/images/skyboxes/sky_winter+6.jpg",
	"/images/skyboxes/early_morning+6.jpg",
	"/images/skyboxes/sky_afternoon+6.jpg",
	"/images/skyboxes/sky_cloudy+6.jpg",
	"/images/skyboxes/sky_cloudy3+6.jpg",
	"/images/skyboxes/sky_day+6.jpg",
	"/images/skyboxes/sky_day2+6.jpg",
	"/images/skyboxes/sky_deepsun+6.jpg",
	"/images/skyboxes/sky_evening+6.jpg",
	"/images/skyboxes/sky_morning+6.jpg",
	"/images/skyboxes/sky_morning2+6.jpg",
	"/images/skyboxes/sky_noon+6.jpg",
	"/images/skyboxes/sky_warp+6.jpg",
	"/images/skyboxes/space_Hubble_Nebula+6.jpg",
	"/images/skyboxes/space_gray_matter+6.jpg",
	"/images/skyboxes/space_easter+6.jpg",
	"/images/skyboxes/space_hot_nebula+6.jpg",
	"/images/skyboxes/space_ice_field+6.jpg",
	"/images/skyboxes/space_lemon_lime+6.jpg",
	"/images/skyboxes/space_milk_chocolate+6.jpg",
	"/images/skyboxes/space_solar_bloom+6.jpg",
	"/images/skyboxes/space_thick_rb+6.jpg",
}

// NumBackgrounds is the number of skybox textures to cycle through
const NumBackgrounds = len(skyboxImages)

// wrapBackground maps any index onto 0..NumBackgrounds-1
func wrapBackground(i int) int {
	return ((i % NumBackgrounds) + NumBackgrounds) % NumBackgrounds
}

// BackgroundFor returns the skybox image for index i, cycling every NumBackgrounds
func BackgroundFor(i int) string {
	return skyboxImages[wrapBackground(i)]
}

// Background returns the image for the current background index,
// wrapping the index first if it ran past the table.
func (m *Module) Background() string {
	m.backgroundIndex = wrapBackground(m.backgroundIndex)
	return skyboxImages[m.backgroundIndex]
}

// BackgroundIndex returns the index the next scene build will use
func (m *Module) BackgroundIndex() int {
	return m.backgroundIndex
}
