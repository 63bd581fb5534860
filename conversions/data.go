package conversions

var categories = []Category{
	{
		ID:          "weight",
		Name:        "Weight",
		Description: "Convert between pounds, kilograms, ounces, and grams",
		Icon:        "⚖️",
		Converters:  []string{"pounds-to-kilograms", "ounces-to-grams", "kilograms-to-stones"},
	},
	{
		ID:          "length",
		Name:        "Length",
		Description: "Convert between inches, centimeters, feet, and meters",
		Icon:        "📏",
		Converters:  []string{"inches-to-centimeters", "feet-to-meters", "miles-to-kilometers"},
	},
	{
		ID:          "temperature",
		Name:        "Temperature",
		Description: "Convert between Fahrenheit, Celsius, and Kelvin",
		Icon:        "🌡️",
		Converters:  []string{"fahrenheit-to-celsius", "celsius-to-kelvin"},
	},
	{
		ID:          "volume",
		Name:        "Volume",
		Description: "Convert between liters, milliliters, and gallons",
		Icon:        "🧪",
		Converters:  []string{"liters-to-milliliters", "gallons-to-liters", "cups-to-milliliters"},
	},
	{
		ID:          "data",
		Name:        "Data Size",
		Description: "Convert between bytes, kilobytes, megabytes, and gigabytes",
		Icon:        "💾",
		Converters:  []string{"megabytes-to-gigabytes", "gigabytes-to-terabytes", "kilobytes-to-megabytes"},
	},
	{
		ID:          "time",
		Name:        "Time",
		Description: "Convert between seconds, minutes, hours, and days",
		Icon:        "⏱️",
		Converters:  []string{"hours-to-minutes", "days-to-hours", "weeks-to-days"},
	},
	{
		ID:          "area",
		Name:        "Area",
		Description: "Convert between square feet, square meters, and acres",
		Icon:        "📐",
		Converters:  []string{"square-feet-to-square-meters", "acres-to-hectares", "square-miles-to-square-kilometers"},
	},
	{
		ID:          "speed",
		Name:        "Speed",
		Description: "Convert between mph, km/h, and m/s",
		Icon:        "🚗",
		Converters:  []string{"mph-to-kmh", "kmh-to-ms", "knots-to-mph"},
	},
}

var (
	pounds     = Unit{ID: "lb", Name: "Pounds", Symbol: "lb"}
	kilograms  = Unit{ID: "kg", Name: "Kilograms", Symbol: "kg"}
	ounces     = Unit{ID: "oz", Name: "Ounces", Symbol: "oz"}
	grams      = Unit{ID: "g", Name: "Grams", Symbol: "g"}
	stones     = Unit{ID: "st", Name: "Stones", Symbol: "st"}
	inches     = Unit{ID: "in", Name: "Inches", Symbol: "in"}
	centimeter = Unit{ID: "cm", Name: "Centimeters", Symbol: "cm"}
	feet       = Unit{ID: "ft", Name: "Feet", Symbol: "ft"}
	meters     = Unit{ID: "m", Name: "Meters", Symbol: "m"}
	miles      = Unit{ID: "mi", Name: "Miles", Symbol: "mi"}
	kilometers = Unit{ID: "km", Name: "Kilometers", Symbol: "km"}
	fahrenheit = Unit{ID: "f", Name: "Fahrenheit", Symbol: "°F"}
	celsius    = Unit{ID: "c", Name: "Celsius", Symbol: "°C"}
	kelvin     = Unit{ID: "k", Name: "Kelvin", Symbol: "K"}
	liters     = Unit{ID: "l", Name: "Liters", Symbol: "L"}
	milliliter = Unit{ID: "ml", Name: "Milliliters", Symbol: "mL"}
	gallons    = Unit{ID: "gal", Name: "Gallons", Symbol: "gal"}
	cups       = Unit{ID: "cup", Name: "Cups", Symbol: "cup"}
	kilobytes  = Unit{ID: "kb", Name: "Kilobytes", Symbol: "KB"}
	megabytes  = Unit{ID: "mb", Name: "Megabytes", Symbol: "MB"}
	gigabytes  = Unit{ID: "gb", Name: "Gigabytes", Symbol: "GB"}
	terabytes  = Unit{ID: "tb", Name: "Terabytes", Symbol: "TB"}
	minutes    = Unit{ID: "min", Name: "Minutes", Symbol: "min"}
	hours      = Unit{ID: "hr", Name: "Hours", Symbol: "hr"}
	days       = Unit{ID: "day", Name: "Days", Symbol: "days"}
	weeks      = Unit{ID: "wk", Name: "Weeks", Symbol: "wk"}
	sqFeet     = Unit{ID: "sqft", Name: "Square Feet", Symbol: "ft²"}
	sqMeters   = Unit{ID: "sqm", Name: "Square Meters", Symbol: "m²"}
	acres      = Unit{ID: "ac", Name: "Acres", Symbol: "ac"}
	hectares   = Unit{ID: "ha", Name: "Hectares", Symbol: "ha"}
	sqMiles    = Unit{ID: "sqmi", Name: "Square Miles", Symbol: "mi²"}
	sqKm       = Unit{ID: "sqkm", Name: "Square Kilometers", Symbol: "km²"}
	mph        = Unit{ID: "mph", Name: "Miles per Hour", Symbol: "mph"}
	kmh        = Unit{ID: "kmh", Name: "Kilometers per Hour", Symbol: "km/h"}
	mps        = Unit{ID: "ms", Name: "Meters per Second", Symbol: "m/s"}
	knots      = Unit{ID: "kn", Name: "Knots", Symbol: "kn"}
)

// Registration order is significant: ByCategory and Related preserve it.
var conversions = []Pair{
	// Weight
	{
		Slug:        "pounds-to-kilograms",
		Category:    "weight",
		From:        pounds,
		To:          kilograms,
		Title:       "Pounds to Kilograms Converter",
		Description: "Convert pounds (lb) to kilograms (kg) instantly. Free online weight converter with accurate results.",
		Explanation: "One pound equals approximately 0.453592 kilograms. The pound is commonly used in the United States and the United Kingdom, while the kilogram is the standard unit of mass in the metric system used worldwide.",
		Transform:   Scale(0.453592),
	},
	{
		Slug:        "ounces-to-grams",
		Category:    "weight",
		From:        ounces,
		To:          grams,
		Title:       "Ounces to Grams Converter",
		Description: "Convert ounces (oz) to grams (g) instantly. Free online weight converter with accurate results.",
		Explanation: "One ounce equals approximately 28.3495 grams. Ounces are commonly used in the United States for measuring weight, especially for food and precious metals, while grams are the standard metric unit.",
		Transform:   Scale(28.3495),
	},
	// Length
	{
		Slug:        "inches-to-centimeters",
		Category:    "length",
		From:        inches,
		To:          centimeter,
		Title:       "Inches to Centimeters Converter",
		Description: "Convert inches (in) to centimeters (cm) instantly. Free online length converter with accurate results.",
		Explanation: "One inch equals exactly 2.54 centimeters. The inch is a unit of length in the imperial system, while the centimeter is part of the metric system used by most countries worldwide.",
		Transform:   Scale(2.54),
	},
	{
		Slug:        "feet-to-meters",
		Category:    "length",
		From:        feet,
		To:          meters,
		Title:       "Feet to Meters Converter",
		Description: "Convert feet (ft) to meters (m) instantly. Free online length converter with accurate results.",
		Explanation: "One foot equals exactly 0.3048 meters. The foot is commonly used in the United States for measuring height and distance, while the meter is the base unit of length in the metric system.",
		Transform:   Scale(0.3048),
	},
	// Temperature
	{
		Slug:        "fahrenheit-to-celsius",
		Category:    "temperature",
		From:        fahrenheit,
		To:          celsius,
		Title:       "Fahrenheit to Celsius Converter",
		Description: "Convert Fahrenheit (°F) to Celsius (°C) instantly. Free online temperature converter with accurate results.",
		Explanation: "To convert Fahrenheit to Celsius, subtract 32 from the Fahrenheit value and multiply by 5/9. Fahrenheit is commonly used in the United States, while Celsius is the standard temperature scale used worldwide.",
		Transform:   Ratio(-32, 5, 9, 0),
	},
	// Volume
	{
		Slug:        "liters-to-milliliters",
		Category:    "volume",
		From:        liters,
		To:          milliliter,
		Title:       "Liters to Milliliters Converter",
		Description: "Convert liters (L) to milliliters (mL) instantly. Free online volume converter with accurate results.",
		Explanation: "One liter equals exactly 1000 milliliters. Both are metric units of volume, with liters commonly used for larger quantities and milliliters for smaller amounts, especially in cooking and medicine.",
		Transform:   Scale(1000),
	},
	{
		Slug:        "gallons-to-liters",
		Category:    "volume",
		From:        gallons,
		To:          liters,
		Title:       "Gallons to Liters Converter",
		Description: "Convert gallons (gal) to liters (L) instantly. Free online volume converter with accurate results.",
		Explanation: "One US gallon equals approximately 3.78541 liters. The gallon is commonly used in the United States for measuring liquid volumes, especially for fuel and beverages, while the liter is the standard metric unit.",
		Transform:   Scale(3.78541),
	},
	{
		Slug:        "cups-to-milliliters",
		Category:    "volume",
		From:        cups,
		To:          milliliter,
		Title:       "Cups to Milliliters Converter",
		Description: "Convert cups to milliliters (mL) instantly. Free online volume converter for cooking and baking.",
		Explanation: "One US cup equals approximately 236.588 milliliters. Cups are commonly used in cooking recipes in the United States, while milliliters provide more precise measurements used in most other countries.",
		Transform:   Scale(236.588),
	},
	// Weight, continued
	{
		Slug:        "kilograms-to-stones",
		Category:    "weight",
		From:        kilograms,
		To:          stones,
		Title:       "Kilograms to Stones Converter",
		Description: "Convert kilograms (kg) to stones (st) instantly. Free online weight converter with accurate results.",
		Explanation: "One stone equals approximately 6.35029 kilograms. The stone is commonly used in the UK and Ireland for measuring body weight, while the kilogram is the standard metric unit used worldwide.",
		Transform:   Divide(6.35029),
	},
	// Length, continued
	{
		Slug:        "miles-to-kilometers",
		Category:    "length",
		From:        miles,
		To:          kilometers,
		Title:       "Miles to Kilometers Converter",
		Description: "Convert miles (mi) to kilometers (km) instantly. Free online distance converter with accurate results.",
		Explanation: "One mile equals approximately 1.60934 kilometers. Miles are commonly used in the United States and UK for road distances, while kilometers are the standard metric unit used by most countries worldwide.",
		Transform:   Scale(1.60934),
	},
	// Temperature, continued
	{
		Slug:        "celsius-to-kelvin",
		Category:    "temperature",
		From:        celsius,
		To:          kelvin,
		Title:       "Celsius to Kelvin Converter",
		Description: "Convert Celsius (°C) to Kelvin (K) instantly. Free online temperature converter for scientific calculations.",
		Explanation: "To convert Celsius to Kelvin, add 273.15 to the Celsius value. Kelvin is the SI base unit for temperature used in scientific contexts, where 0 K represents absolute zero.",
		Transform:   Add(273.15),
	},
	// Data size
	{
		Slug:        "megabytes-to-gigabytes",
		Category:    "data",
		From:        megabytes,
		To:          gigabytes,
		Title:       "Megabytes to Gigabytes Converter",
		Description: "Convert megabytes (MB) to gigabytes (GB) instantly. Free online data size converter with accurate results.",
		Explanation: "One gigabyte equals 1024 megabytes (binary) or 1000 megabytes (decimal). This converter uses the binary standard commonly used by operating systems and storage devices.",
		Transform:   Divide(1024),
	},
	{
		Slug:        "gigabytes-to-terabytes",
		Category:    "data",
		From:        gigabytes,
		To:          terabytes,
		Title:       "Gigabytes to Terabytes Converter",
		Description: "Convert gigabytes (GB) to terabytes (TB) instantly. Free online data size converter for storage calculations.",
		Explanation: "One terabyte equals 1024 gigabytes (binary). This is useful for calculating storage requirements for large files, backups, and cloud storage.",
		Transform:   Divide(1024),
	},
	{
		Slug:        "kilobytes-to-megabytes",
		Category:    "data",
		From:        kilobytes,
		To:          megabytes,
		Title:       "Kilobytes to Megabytes Converter",
		Description: "Convert kilobytes (KB) to megabytes (MB) instantly. Free online data size converter with accurate results.",
		Explanation: "One megabyte equals 1024 kilobytes (binary). Kilobytes are commonly used for measuring small files like documents, while megabytes are used for larger files like images and audio.",
		Transform:   Divide(1024),
	},
	// Time
	{
		Slug:        "hours-to-minutes",
		Category:    "time",
		From:        hours,
		To:          minutes,
		Title:       "Hours to Minutes Converter",
		Description: "Convert hours to minutes instantly. Free online time converter for scheduling and calculations.",
		Explanation: "One hour equals exactly 60 minutes. This conversion is fundamental for time calculations, scheduling, and understanding durations.",
		Transform:   Scale(60),
	},
	{
		Slug:        "days-to-hours",
		Category:    "time",
		From:        days,
		To:          hours,
		Title:       "Days to Hours Converter",
		Description: "Convert days to hours instantly. Free online time converter for project planning and scheduling.",
		Explanation: "One day equals exactly 24 hours. This conversion is essential for project planning, travel calculations, and understanding time spans.",
		Transform:   Scale(24),
	},
	{
		Slug:        "weeks-to-days",
		Category:    "time",
		From:        weeks,
		To:          days,
		Title:       "Weeks to Days Converter",
		Description: "Convert weeks to days instantly. Free online time converter for planning and scheduling.",
		Explanation: "One week equals exactly 7 days. This conversion is useful for project timelines, planning events, and calculating deadlines.",
		Transform:   Scale(7),
	},
	// Area
	{
		Slug:        "square-feet-to-square-meters",
		Category:    "area",
		From:        sqFeet,
		To:          sqMeters,
		Title:       "Square Feet to Square Meters Converter",
		Description: "Convert square feet (ft²) to square meters (m²) instantly. Free online area converter for real estate and construction.",
		Explanation: "One square foot equals approximately 0.092903 square meters. Square feet are commonly used in the US for real estate, while square meters are the global standard.",
		Transform:   Scale(0.092903),
	},
	{
		Slug:        "acres-to-hectares",
		Category:    "area",
		From:        acres,
		To:          hectares,
		Title:       "Acres to Hectares Converter",
		Description: "Convert acres to hectares instantly. Free online area converter for land measurements.",
		Explanation: "One acre equals approximately 0.404686 hectares. Acres are commonly used in the US and UK for land area, while hectares are the metric standard used internationally.",
		Transform:   Scale(0.404686),
	},
	{
		Slug:        "square-miles-to-square-kilometers",
		Category:    "area",
		From:        sqMiles,
		To:          sqKm,
		Title:       "Square Miles to Square Kilometers Converter",
		Description: "Convert square miles (mi²) to square kilometers (km²) instantly. Free online area converter for geography.",
		Explanation: "One square mile equals approximately 2.58999 square kilometers. This conversion is useful for comparing geographic areas between imperial and metric systems.",
		Transform:   Scale(2.58999),
	},
	// Speed
	{
		Slug:        "mph-to-kmh",
		Category:    "speed",
		From:        mph,
		To:          kmh,
		Title:       "MPH to KM/H Converter",
		Description: "Convert miles per hour (mph) to kilometers per hour (km/h) instantly. Free online speed converter.",
		Explanation: "One mile per hour equals approximately 1.60934 kilometers per hour. MPH is used in the US and UK, while km/h is the standard speed unit in most other countries.",
		Transform:   Scale(1.60934),
	},
	{
		Slug:        "kmh-to-ms",
		Category:    "speed",
		From:        kmh,
		To:          mps,
		Title:       "KM/H to M/S Converter",
		Description: "Convert kilometers per hour (km/h) to meters per second (m/s) instantly. Free online speed converter for physics.",
		Explanation: "One kilometer per hour equals approximately 0.277778 meters per second. M/s is the SI unit for speed used in scientific calculations and physics.",
		Transform:   Divide(3.6),
	},
	{
		Slug:        "knots-to-mph",
		Category:    "speed",
		From:        knots,
		To:          mph,
		Title:       "Knots to MPH Converter",
		Description: "Convert knots to miles per hour (mph) instantly. Free online speed converter for marine and aviation.",
		Explanation: "One knot equals approximately 1.15078 miles per hour. Knots are the standard unit for measuring speed in maritime and aviation contexts.",
		Transform:   Scale(1.15078),
	},
}
