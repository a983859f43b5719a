// README: Embedded default catalog: locations, vehicles, rate card, peak dates.
package tariff

// Locations offered in the route dropdowns, grouped loosely by region.
var defaultLocations = []string{
	"Singapore - Changi Airport",
	"Singapore - City / Hotel",
	"Singapore - Residential",
	"Johor Bahru - City / JB Sentral",
	"Johor Bahru - Senai Airport",
	"Johor Bahru - Legoland",
	"Johor Bahru - Desaru",
	"Johor Bahru - Mersing Jetty",
	"Malacca",
	"Kuala Lumpur - City Center",
	"Kuala Lumpur - KLIA 1/2",
	"Genting Highlands",
}

var defaultVehicles = []VehicleSpec{
	{
		Class:       Sedan,
		MaxPax:      4,
		MaxLuggage:  2,
		Description: "Ideal for couples or small families with light luggage. Comfortable and economical.",
		Image:       "https://d1g6w7sntckt92.cloudfront.net/public/images/car_image/ii2KJXunE2KEqONrTOSLgcyN3wtJgxxhrA4kStZ0.webp",
	},
	{
		Class:       MPVStd,
		MaxPax:      7,
		MaxLuggage:  4,
		Description: "Toyota Innova or Perodua Aruz. Great for families with extra luggage space.",
		Image:       "https://www.bigwheels.my/wp-content/uploads/2021/04/Perodua-Aruz.jpg",
	},
	{
		Class:       MPVLux,
		MaxPax:      6,
		MaxLuggage:  5,
		Description: "Toyota Alphard / Vellfire. VIP comfort with pilot seats and premium legroom.",
		Image:       "https://global.toyota/pages/news/images/2023/06/21/1330/002.jpg",
	},
	{
		Class:       MultiMPV,
		MaxPax:      9,
		MaxLuggage:  7,
		Description: "Hyundai Starex or similar. Spacious Multi-Purpose Vehicle for larger groups.",
		Image:       "https://mytripmalaysia.com/wp-content/uploads/2024/04/starex-interior.jpg",
	},
}

// defaultRoutes is scanned linearly; earlier entries win on overlapping names.
var defaultRoutes = []Route{
	{From: "Singapore", To: "Johor Bahru", Prices: map[VehicleClass]int64{
		Sedan: 280, MPVStd: 320, MPVLux: 480, MultiMPV: 550,
	}},
	{From: "Singapore", To: "Legoland", Prices: map[VehicleClass]int64{
		Sedan: 300, MPVStd: 350, MPVLux: 500, MultiMPV: 600,
	}},
	{From: "Singapore", To: "Malacca", Prices: map[VehicleClass]int64{
		Sedan: 750, MPVStd: 850, MPVLux: 1100, MultiMPV: 1200,
	}},
	{From: "Singapore", To: "Kuala Lumpur", Prices: map[VehicleClass]int64{
		Sedan: 1000, MPVStd: 1100, MPVLux: 1350, MultiMPV: 1450,
	}},
	{From: "Singapore", To: "Genting", Prices: map[VehicleClass]int64{
		Sedan: 1200, MPVStd: 1300, MPVLux: 1550, MultiMPV: 1650,
	}},
	{From: "Johor Bahru", To: "Kuala Lumpur", Prices: map[VehicleClass]int64{
		Sedan: 700, MPVStd: 800, MPVLux: 1000, MultiMPV: 1100,
	}},
	{From: "Johor Bahru", To: "Genting", Prices: map[VehicleClass]int64{
		Sedan: 750, MPVStd: 800, MPVLux: 1050, MultiMPV: 1200,
	}},
}

// defaultPeakDates covers the festive windows with surcharge treatment.
var defaultPeakDates = []string{
	"2024-12-24", "2024-12-25", "2024-12-31",
	"2025-01-01", "2025-01-29", "2025-01-30",
}
