package weather

// defaultStormWindSpeed is the wind speed above which a weather type
// counts as a storm. The historical game setting it mirrors is spelled
// fStromWindSpeed.
const defaultStormWindSpeed = 0.70

// defaultStormOrigin is the Red Mountain landmark storm debris blows
// away from, in world units.
var defaultStormOrigin = Vec3{X: 19950, Y: 72032, Z: 27831}

// DefaultValues returns the builtin fallback table: every key the
// engine reads, with values shaped after the classic data files. A
// config file overrides individual keys; the engine runs with no file
// at all.
func DefaultValues() Values {
	return Values{
		// Day cycle.
		"Weather_Sunrise_Time":                  "6",
		"Weather_Sunset_Time":                   "18",
		"Weather_Sunrise_Duration":              "2",
		"Weather_Sunset_Duration":               "2",
		"Weather_Sun_Pre-Sunset_Time":           "1",
		"Weather_Hours_Between_Weather_Changes": "20",
		"Weather_Precip_Gravity":                "575",

		// Underwater fog density by time of day.
		"Water_UnderwaterSunriseFog": "3",
		"Water_UnderwaterDayFog":     "2.5",
		"Water_UnderwaterSunsetFog":  "3",
		"Water_UnderwaterNightFog":   "4",

		// Clear.
		"Weather_Clear_Cloud_Texture":          "tx_sky_clear.dds",
		"Weather_Clear_Sky_Sunrise_Color":      "117,141,164",
		"Weather_Clear_Sky_Day_Color":          "95,135,203",
		"Weather_Clear_Sky_Sunset_Color":       "56,89,129",
		"Weather_Clear_Sky_Night_Color":        "9,10,11",
		"Weather_Clear_Fog_Sunrise_Color":      "255,189,157",
		"Weather_Clear_Fog_Day_Color":          "206,227,255",
		"Weather_Clear_Fog_Sunset_Color":       "255,189,157",
		"Weather_Clear_Fog_Night_Color":        "9,10,11",
		"Weather_Clear_Ambient_Sunrise_Color":  "47,66,96",
		"Weather_Clear_Ambient_Day_Color":      "137,140,160",
		"Weather_Clear_Ambient_Sunset_Color":   "68,75,96",
		"Weather_Clear_Ambient_Night_Color":    "32,35,42",
		"Weather_Clear_Sun_Sunrise_Color":      "242,159,99",
		"Weather_Clear_Sun_Day_Color":          "255,252,238",
		"Weather_Clear_Sun_Sunset_Color":       "255,115,79",
		"Weather_Clear_Sun_Night_Color":        "59,97,176",
		"Weather_Clear_Sun_Disc_Sunset_Color":  "255,189,157",
		"Weather_Clear_Land_Fog_Day_Depth":     "0.69",
		"Weather_Clear_Land_Fog_Night_Depth":   "0.69",
		"Weather_Clear_Wind_Speed":             "0.1",
		"Weather_Clear_Cloud_Speed":            "1.25",
		"Weather_Clear_Glare_View":             "1",
		"Weather_Clear_Transition_Delta":       "0.015",
		"Weather_Clear_Clouds_Maximum_Percent": "1.0",
		"Weather_Clear_Ambient_Loop_Sound_ID":  "None",

		// Cloudy.
		"Weather_Cloudy_Cloud_Texture":          "tx_sky_cloudy.dds",
		"Weather_Cloudy_Sky_Sunrise_Color":      "126,158,173",
		"Weather_Cloudy_Sky_Day_Color":          "117,160,215",
		"Weather_Cloudy_Sky_Sunset_Color":       "111,114,159",
		"Weather_Cloudy_Sky_Night_Color":        "9,10,11",
		"Weather_Cloudy_Fog_Sunrise_Color":      "255,207,149",
		"Weather_Cloudy_Fog_Day_Color":          "245,235,224",
		"Weather_Cloudy_Fog_Sunset_Color":       "255,155,106",
		"Weather_Cloudy_Fog_Night_Color":        "9,10,11",
		"Weather_Cloudy_Ambient_Sunrise_Color":  "66,74,87",
		"Weather_Cloudy_Ambient_Day_Color":      "137,145,160",
		"Weather_Cloudy_Ambient_Sunset_Color":   "71,80,92",
		"Weather_Cloudy_Ambient_Night_Color":    "32,39,54",
		"Weather_Cloudy_Sun_Sunrise_Color":      "241,177,99",
		"Weather_Cloudy_Sun_Day_Color":          "255,236,221",
		"Weather_Cloudy_Sun_Sunset_Color":       "255,89,0",
		"Weather_Cloudy_Sun_Night_Color":        "77,91,124",
		"Weather_Cloudy_Sun_Disc_Sunset_Color":  "255,202,179",
		"Weather_Cloudy_Land_Fog_Day_Depth":     "0.72",
		"Weather_Cloudy_Land_Fog_Night_Depth":   "0.72",
		"Weather_Cloudy_Wind_Speed":             "0.2",
		"Weather_Cloudy_Cloud_Speed":            "2",
		"Weather_Cloudy_Glare_View":             "1",
		"Weather_Cloudy_Transition_Delta":       "0.015",
		"Weather_Cloudy_Clouds_Maximum_Percent": "1.0",
		"Weather_Cloudy_Ambient_Loop_Sound_ID":  "None",

		// Foggy.
		"Weather_Foggy_Cloud_Texture":          "tx_sky_foggy.dds",
		"Weather_Foggy_Sky_Sunrise_Color":      "197,190,180",
		"Weather_Foggy_Sky_Day_Color":          "184,211,228",
		"Weather_Foggy_Sky_Sunset_Color":       "142,159,176",
		"Weather_Foggy_Sky_Night_Color":        "18,23,28",
		"Weather_Foggy_Fog_Sunrise_Color":      "173,164,148",
		"Weather_Foggy_Fog_Day_Color":          "150,187,209",
		"Weather_Foggy_Fog_Sunset_Color":       "113,135,157",
		"Weather_Foggy_Fog_Night_Color":        "19,24,29",
		"Weather_Foggy_Ambient_Sunrise_Color":  "48,43,37",
		"Weather_Foggy_Ambient_Day_Color":      "92,109,120",
		"Weather_Foggy_Ambient_Sunset_Color":   "28,33,39",
		"Weather_Foggy_Ambient_Night_Color":    "28,33,39",
		"Weather_Foggy_Sun_Sunrise_Color":      "177,162,137",
		"Weather_Foggy_Sun_Day_Color":          "111,131,151",
		"Weather_Foggy_Sun_Sunset_Color":       "125,157,189",
		"Weather_Foggy_Sun_Night_Color":        "81,100,119",
		"Weather_Foggy_Sun_Disc_Sunset_Color":  "223,223,223",
		"Weather_Foggy_Land_Fog_Day_Depth":     "1.0",
		"Weather_Foggy_Land_Fog_Night_Depth":   "1.9",
		"Weather_Foggy_Wind_Speed":             "0",
		"Weather_Foggy_Cloud_Speed":            "1.25",
		"Weather_Foggy_Glare_View":             "0.25",
		"Weather_Foggy_Transition_Delta":       "0.015",
		"Weather_Foggy_Clouds_Maximum_Percent": "1.0",
		"Weather_Foggy_Ambient_Loop_Sound_ID":  "None",

		// Overcast.
		"Weather_Overcast_Cloud_Texture":          "tx_sky_overcast.dds",
		"Weather_Overcast_Sky_Sunrise_Color":      "91,99,106",
		"Weather_Overcast_Sky_Day_Color":          "143,146,149",
		"Weather_Overcast_Sky_Sunset_Color":       "108,115,121",
		"Weather_Overcast_Sky_Night_Color":        "19,22,25",
		"Weather_Overcast_Fog_Sunrise_Color":      "85,119,143",
		"Weather_Overcast_Fog_Day_Color":          "143,146,149",
		"Weather_Overcast_Fog_Sunset_Color":       "85,119,143",
		"Weather_Overcast_Fog_Night_Color":        "19,22,25",
		"Weather_Overcast_Ambient_Sunrise_Color":  "84,88,92",
		"Weather_Overcast_Ambient_Day_Color":      "93,96,105",
		"Weather_Overcast_Ambient_Sunset_Color":   "83,77,75",
		"Weather_Overcast_Ambient_Night_Color":    "57,60,66",
		"Weather_Overcast_Sun_Sunrise_Color":      "87,125,163",
		"Weather_Overcast_Sun_Day_Color":          "163,169,183",
		"Weather_Overcast_Sun_Sunset_Color":       "85,103,157",
		"Weather_Overcast_Sun_Night_Color":        "32,54,100",
		"Weather_Overcast_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Overcast_Land_Fog_Day_Depth":     "0.70",
		"Weather_Overcast_Land_Fog_Night_Depth":   "0.70",
		"Weather_Overcast_Wind_Speed":             "0.2",
		"Weather_Overcast_Cloud_Speed":            "1.5",
		"Weather_Overcast_Glare_View":             "0",
		"Weather_Overcast_Transition_Delta":       "0.015",
		"Weather_Overcast_Clouds_Maximum_Percent": "1.0",
		"Weather_Overcast_Ambient_Loop_Sound_ID":  "None",

		// Rain.
		"Weather_Rain_Cloud_Texture":          "tx_sky_rainy.dds",
		"Weather_Rain_Sky_Sunrise_Color":      "71,74,75",
		"Weather_Rain_Sky_Day_Color":          "116,120,122",
		"Weather_Rain_Sky_Sunset_Color":       "73,73,73",
		"Weather_Rain_Sky_Night_Color":        "24,25,26",
		"Weather_Rain_Fog_Sunrise_Color":      "71,74,75",
		"Weather_Rain_Fog_Day_Color":          "116,120,122",
		"Weather_Rain_Fog_Sunset_Color":       "73,73,73",
		"Weather_Rain_Fog_Night_Color":        "24,25,26",
		"Weather_Rain_Ambient_Sunrise_Color":  "97,90,88",
		"Weather_Rain_Ambient_Day_Color":      "105,110,113",
		"Weather_Rain_Ambient_Sunset_Color":   "88,97,97",
		"Weather_Rain_Ambient_Night_Color":    "50,55,67",
		"Weather_Rain_Sun_Sunrise_Color":      "131,122,120",
		"Weather_Rain_Sun_Day_Color":          "149,157,170",
		"Weather_Rain_Sun_Sunset_Color":       "120,126,131",
		"Weather_Rain_Sun_Night_Color":        "50,62,101",
		"Weather_Rain_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Rain_Land_Fog_Day_Depth":     "0.8",
		"Weather_Rain_Land_Fog_Night_Depth":   "0.8",
		"Weather_Rain_Wind_Speed":             "0.3",
		"Weather_Rain_Cloud_Speed":            "3",
		"Weather_Rain_Glare_View":             "0",
		"Weather_Rain_Transition_Delta":       "0.015",
		"Weather_Rain_Clouds_Maximum_Percent": "0.66",
		"Weather_Rain_Using_Precip":           "1",
		"Weather_Rain_Rain_Entrance_Speed":    "7",
		"Weather_Rain_Rain_Loop_Sound_ID":     "rain",

		// Thunderstorm.
		"Weather_Thunderstorm_Cloud_Texture":          "tx_sky_thunder.dds",
		"Weather_Thunderstorm_Sky_Sunrise_Color":      "35,36,39",
		"Weather_Thunderstorm_Sky_Day_Color":          "97,104,115",
		"Weather_Thunderstorm_Sky_Sunset_Color":       "35,36,39",
		"Weather_Thunderstorm_Sky_Night_Color":        "19,20,22",
		"Weather_Thunderstorm_Fog_Sunrise_Color":      "70,74,85",
		"Weather_Thunderstorm_Fog_Day_Color":          "97,104,115",
		"Weather_Thunderstorm_Fog_Sunset_Color":       "70,74,85",
		"Weather_Thunderstorm_Fog_Night_Color":        "19,20,22",
		"Weather_Thunderstorm_Ambient_Sunrise_Color":  "54,54,54",
		"Weather_Thunderstorm_Ambient_Day_Color":      "90,90,90",
		"Weather_Thunderstorm_Ambient_Sunset_Color":   "54,54,54",
		"Weather_Thunderstorm_Ambient_Night_Color":    "49,51,54",
		"Weather_Thunderstorm_Sun_Sunrise_Color":      "91,99,122",
		"Weather_Thunderstorm_Sun_Day_Color":          "138,144,155",
		"Weather_Thunderstorm_Sun_Sunset_Color":       "96,101,117",
		"Weather_Thunderstorm_Sun_Night_Color":        "55,76,110",
		"Weather_Thunderstorm_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Thunderstorm_Land_Fog_Day_Depth":     "1",
		"Weather_Thunderstorm_Land_Fog_Night_Depth":   "1.15",
		"Weather_Thunderstorm_Wind_Speed":             "0.5",
		"Weather_Thunderstorm_Cloud_Speed":            "3",
		"Weather_Thunderstorm_Glare_View":             "0",
		"Weather_Thunderstorm_Transition_Delta":       "0.030",
		"Weather_Thunderstorm_Clouds_Maximum_Percent": "0.66",
		"Weather_Thunderstorm_Using_Precip":           "1",
		"Weather_Thunderstorm_Rain_Entrance_Speed":    "5",
		"Weather_Thunderstorm_Rain_Loop_Sound_ID":     "rain heavy",
		"Weather_Thunderstorm_Thunder_Frequency":      "0.4",
		"Weather_Thunderstorm_Thunder_Threshold":      "0.6",
		"Weather_Thunderstorm_Thunder_Sound_ID_0":     "Thunder0",
		"Weather_Thunderstorm_Thunder_Sound_ID_1":     "Thunder1",
		"Weather_Thunderstorm_Thunder_Sound_ID_2":     "Thunder2",
		"Weather_Thunderstorm_Thunder_Sound_ID_3":     "Thunder3",
		"Weather_Thunderstorm_Flash_Decrement":        "4",

		// Ashstorm.
		"Weather_Ashstorm_Cloud_Texture":          "tx_sky_ashstorm.dds",
		"Weather_Ashstorm_Sky_Sunrise_Color":      "91,56,51",
		"Weather_Ashstorm_Sky_Day_Color":          "124,73,58",
		"Weather_Ashstorm_Sky_Sunset_Color":       "106,55,40",
		"Weather_Ashstorm_Sky_Night_Color":        "20,21,22",
		"Weather_Ashstorm_Fog_Sunrise_Color":      "91,56,51",
		"Weather_Ashstorm_Fog_Day_Color":          "124,73,58",
		"Weather_Ashstorm_Fog_Sunset_Color":       "106,55,40",
		"Weather_Ashstorm_Fog_Night_Color":        "20,21,22",
		"Weather_Ashstorm_Ambient_Sunrise_Color":  "52,42,37",
		"Weather_Ashstorm_Ambient_Day_Color":      "75,49,41",
		"Weather_Ashstorm_Ambient_Sunset_Color":   "48,39,35",
		"Weather_Ashstorm_Ambient_Night_Color":    "36,42,49",
		"Weather_Ashstorm_Sun_Sunrise_Color":      "184,91,71",
		"Weather_Ashstorm_Sun_Day_Color":          "228,139,114",
		"Weather_Ashstorm_Sun_Sunset_Color":       "185,86,57",
		"Weather_Ashstorm_Sun_Night_Color":        "54,66,74",
		"Weather_Ashstorm_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Ashstorm_Land_Fog_Day_Depth":     "1.1",
		"Weather_Ashstorm_Land_Fog_Night_Depth":   "1.2",
		"Weather_Ashstorm_Wind_Speed":             "0.8",
		"Weather_Ashstorm_Cloud_Speed":            "7",
		"Weather_Ashstorm_Glare_View":             "0",
		"Weather_Ashstorm_Transition_Delta":       "0.035",
		"Weather_Ashstorm_Clouds_Maximum_Percent": "1.0",
		"Weather_Ashstorm_Ambient_Loop_Sound_ID":  "ashstorm",

		// Blight.
		"Weather_Blight_Cloud_Texture":          "tx_sky_blight.dds",
		"Weather_Blight_Sky_Sunrise_Color":      "90,35,35",
		"Weather_Blight_Sky_Day_Color":          "90,35,35",
		"Weather_Blight_Sky_Sunset_Color":       "92,33,33",
		"Weather_Blight_Sky_Night_Color":        "44,14,14",
		"Weather_Blight_Fog_Sunrise_Color":      "90,35,35",
		"Weather_Blight_Fog_Day_Color":          "90,35,35",
		"Weather_Blight_Fog_Sunset_Color":       "92,33,33",
		"Weather_Blight_Fog_Night_Color":        "44,14,14",
		"Weather_Blight_Ambient_Sunrise_Color":  "61,40,40",
		"Weather_Blight_Ambient_Day_Color":      "79,54,54",
		"Weather_Blight_Ambient_Sunset_Color":   "61,44,44",
		"Weather_Blight_Ambient_Night_Color":    "56,48,60",
		"Weather_Blight_Sun_Sunrise_Color":      "180,78,78",
		"Weather_Blight_Sun_Day_Color":          "224,84,84",
		"Weather_Blight_Sun_Sunset_Color":       "180,78,78",
		"Weather_Blight_Sun_Night_Color":        "61,91,143",
		"Weather_Blight_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Blight_Land_Fog_Day_Depth":     "1.1",
		"Weather_Blight_Land_Fog_Night_Depth":   "1.2",
		"Weather_Blight_Wind_Speed":             "0.9",
		"Weather_Blight_Cloud_Speed":            "9",
		"Weather_Blight_Glare_View":             "0",
		"Weather_Blight_Transition_Delta":       "0.04",
		"Weather_Blight_Clouds_Maximum_Percent": "1.0",
		"Weather_Blight_Ambient_Loop_Sound_ID":  "blight",

		// Snow.
		"Weather_Snow_Cloud_Texture":          "tx_bm_sky_snow.dds",
		"Weather_Snow_Sky_Sunrise_Color":      "106,91,91",
		"Weather_Snow_Sky_Day_Color":          "153,158,166",
		"Weather_Snow_Sky_Sunset_Color":       "96,115,134",
		"Weather_Snow_Sky_Night_Color":        "31,35,39",
		"Weather_Snow_Fog_Sunrise_Color":      "106,91,91",
		"Weather_Snow_Fog_Day_Color":          "153,158,166",
		"Weather_Snow_Fog_Sunset_Color":       "96,115,134",
		"Weather_Snow_Fog_Night_Color":        "31,35,39",
		"Weather_Snow_Ambient_Sunrise_Color":  "92,84,84",
		"Weather_Snow_Ambient_Day_Color":      "93,96,105",
		"Weather_Snow_Ambient_Sunset_Color":   "70,79,87",
		"Weather_Snow_Ambient_Night_Color":    "49,58,68",
		"Weather_Snow_Sun_Sunrise_Color":      "141,109,109",
		"Weather_Snow_Sun_Day_Color":          "163,169,183",
		"Weather_Snow_Sun_Sunset_Color":       "101,121,141",
		"Weather_Snow_Sun_Night_Color":        "55,66,77",
		"Weather_Snow_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Snow_Land_Fog_Day_Depth":     "1.0",
		"Weather_Snow_Land_Fog_Night_Depth":   "1.2",
		"Weather_Snow_Wind_Speed":             "0",
		"Weather_Snow_Cloud_Speed":            "1.5",
		"Weather_Snow_Glare_View":             "0",
		"Weather_Snow_Transition_Delta":       "0.014",
		"Weather_Snow_Clouds_Maximum_Percent": "1.0",
		"Weather_Snow_Ambient_Loop_Sound_ID":  "None",

		// Blizzard.
		"Weather_Blizzard_Cloud_Texture":          "tx_bm_sky_blizzard.dds",
		"Weather_Blizzard_Sky_Sunrise_Color":      "91,99,106",
		"Weather_Blizzard_Sky_Day_Color":          "121,133,145",
		"Weather_Blizzard_Sky_Sunset_Color":       "108,115,121",
		"Weather_Blizzard_Sky_Night_Color":        "27,29,31",
		"Weather_Blizzard_Fog_Sunrise_Color":      "91,99,106",
		"Weather_Blizzard_Fog_Day_Color":          "121,133,145",
		"Weather_Blizzard_Fog_Sunset_Color":       "108,115,121",
		"Weather_Blizzard_Fog_Night_Color":        "21,24,28",
		"Weather_Blizzard_Ambient_Sunrise_Color":  "84,88,92",
		"Weather_Blizzard_Ambient_Day_Color":      "93,96,105",
		"Weather_Blizzard_Ambient_Sunset_Color":   "83,77,75",
		"Weather_Blizzard_Ambient_Night_Color":    "53,62,70",
		"Weather_Blizzard_Sun_Sunrise_Color":      "114,128,146",
		"Weather_Blizzard_Sun_Day_Color":          "163,169,183",
		"Weather_Blizzard_Sun_Sunset_Color":       "106,114,136",
		"Weather_Blizzard_Sun_Night_Color":        "57,66,74",
		"Weather_Blizzard_Sun_Disc_Sunset_Color":  "128,128,128",
		"Weather_Blizzard_Land_Fog_Day_Depth":     "2.8",
		"Weather_Blizzard_Land_Fog_Night_Depth":   "3.0",
		"Weather_Blizzard_Wind_Speed":             "0.9",
		"Weather_Blizzard_Cloud_Speed":            "7.5",
		"Weather_Blizzard_Glare_View":             "0",
		"Weather_Blizzard_Transition_Delta":       "0.030",
		"Weather_Blizzard_Clouds_Maximum_Percent": "1.0",
		"Weather_Blizzard_Ambient_Loop_Sound_ID":  "BM Blizzard",

		// Masser, the large moon.
		"Moons_Masser_Size":                         "94",
		"Moons_Masser_Fade_In_Start":                "14",
		"Moons_Masser_Fade_In_Finish":               "15",
		"Moons_Masser_Fade_Out_Start":               "7",
		"Moons_Masser_Fade_Out_Finish":              "10",
		"Moons_Masser_Axis_Offset":                  "35",
		"Moons_Masser_Speed":                        "0.5",
		"Moons_Masser_Daily_Increment":              "1",
		"Moons_Masser_Fade_Start_Angle":             "50",
		"Moons_Masser_Fade_End_Angle":               "40",
		"Moons_Masser_Moon_Shadow_Early_Fade_Angle": "0.5",

		// Secunda, the small fast moon.
		"Moons_Secunda_Size":                         "40",
		"Moons_Secunda_Fade_In_Start":                "14",
		"Moons_Secunda_Fade_In_Finish":               "15",
		"Moons_Secunda_Fade_Out_Start":               "7",
		"Moons_Secunda_Fade_Out_Finish":              "10",
		"Moons_Secunda_Axis_Offset":                  "50",
		"Moons_Secunda_Speed":                        "0.6",
		"Moons_Secunda_Daily_Increment":              "1.2",
		"Moons_Secunda_Fade_Start_Angle":             "50",
		"Moons_Secunda_Fade_End_Angle":               "30",
		"Moons_Secunda_Moon_Shadow_Early_Fade_Angle": "0.5",
	}
}

// DefaultRegions returns the builtin region table. Chances are percent
// weights in canonical id order (Clear, Cloudy, Foggy, Overcast, Rain,
// Thunderstorm, Ashstorm, Blight, Snow, Blizzard), each row summing to
// 100.
func DefaultRegions() []RegionRecord {
	return []RegionRecord{
		{ID: "Ascadian Isles Region", Chances: []int{25, 20, 10, 10, 30, 5, 0, 0, 0, 0}},
		{ID: "Azura's Coast Region", Chances: []int{25, 20, 10, 10, 25, 10, 0, 0, 0, 0}},
		{ID: "Ashlands Region", Chances: []int{25, 20, 4, 10, 2, 4, 35, 0, 0, 0}},
		{ID: "Bitter Coast Region", Chances: []int{10, 20, 20, 10, 30, 10, 0, 0, 0, 0}},
		{ID: "Grazelands Region", Chances: []int{40, 20, 10, 10, 10, 10, 0, 0, 0, 0}},
		{ID: "Molag Mar Region", Chances: []int{15, 10, 5, 10, 0, 10, 40, 10, 0, 0}},
		{ID: "Red Mountain Region", Chances: []int{0, 5, 5, 10, 0, 0, 50, 30, 0, 0}},
		{ID: "Sheogorad", Chances: []int{20, 20, 20, 10, 20, 10, 0, 0, 0, 0}},
		{ID: "West Gash Region", Chances: []int{25, 25, 10, 10, 20, 10, 0, 0, 0, 0}},
		{ID: "Felsaad Coast Region", Chances: []int{20, 20, 10, 10, 10, 0, 0, 0, 25, 5}},
		{ID: "Moesring Mountains Region", Chances: []int{10, 10, 5, 10, 0, 0, 0, 0, 35, 30}},
	}
}
