package training

// Hand-labeled reference locations inside the Faisalabad district, collected
// against 2023 high-resolution basemap imagery.

var urbanPoints = []Point{
	{Lon: 73.0790, Lat: 31.4187, Class: Urban},
	{Lon: 73.0854, Lat: 31.4221, Class: Urban},
	{Lon: 73.0911, Lat: 31.4098, Class: Urban},
	{Lon: 73.1026, Lat: 31.4154, Class: Urban},
	{Lon: 73.1103, Lat: 31.4302, Class: Urban},
	{Lon: 73.0688, Lat: 31.4411, Class: Urban},
	{Lon: 73.0572, Lat: 31.4267, Class: Urban},
	{Lon: 73.0940, Lat: 31.4478, Class: Urban},
	{Lon: 73.1187, Lat: 31.4066, Class: Urban},
	{Lon: 73.0755, Lat: 31.3952, Class: Urban},
	{Lon: 73.0633, Lat: 31.4039, Class: Urban},
	{Lon: 73.1240, Lat: 31.4235, Class: Urban},
	{Lon: 73.0827, Lat: 31.4550, Class: Urban},
	{Lon: 73.0481, Lat: 31.4128, Class: Urban},
	{Lon: 73.1068, Lat: 31.3907, Class: Urban},
	{Lon: 73.0902, Lat: 31.4332, Class: Urban},
	{Lon: 73.1152, Lat: 31.4411, Class: Urban},
	{Lon: 73.0719, Lat: 31.4296, Class: Urban},
	{Lon: 73.0986, Lat: 31.4013, Class: Urban},
	{Lon: 73.0547, Lat: 31.4489, Class: Urban},
}

var agriculturePoints = []Point{
	{Lon: 72.9218, Lat: 31.5204, Class: Agriculture},
	{Lon: 72.9467, Lat: 31.5378, Class: Agriculture},
	{Lon: 72.9651, Lat: 31.5102, Class: Agriculture},
	{Lon: 72.9045, Lat: 31.4920, Class: Agriculture},
	{Lon: 72.8873, Lat: 31.5311, Class: Agriculture},
	{Lon: 73.2108, Lat: 31.3385, Class: Agriculture},
	{Lon: 73.2346, Lat: 31.3541, Class: Agriculture},
	{Lon: 73.1922, Lat: 31.3156, Class: Agriculture},
	{Lon: 73.2554, Lat: 31.3702, Class: Agriculture},
	{Lon: 73.1730, Lat: 31.2980, Class: Agriculture},
	{Lon: 72.9780, Lat: 31.5550, Class: Agriculture},
	{Lon: 73.2775, Lat: 31.3890, Class: Agriculture},
	{Lon: 72.8642, Lat: 31.5068, Class: Agriculture},
	{Lon: 73.1486, Lat: 31.2811, Class: Agriculture},
	{Lon: 72.9332, Lat: 31.4787, Class: Agriculture},
	{Lon: 73.2233, Lat: 31.4050, Class: Agriculture},
	{Lon: 72.9866, Lat: 31.5244, Class: Agriculture},
	{Lon: 73.1654, Lat: 31.3460, Class: Agriculture},
	{Lon: 72.9120, Lat: 31.5447, Class: Agriculture},
	{Lon: 73.2480, Lat: 31.3270, Class: Agriculture},
}

var waterPoints = []Point{
	{Lon: 73.0515, Lat: 31.2509, Class: Water},
	{Lon: 73.0586, Lat: 31.2466, Class: Water},
	{Lon: 73.0463, Lat: 31.2553, Class: Water},
	{Lon: 73.0641, Lat: 31.2421, Class: Water},
	{Lon: 73.0390, Lat: 31.2598, Class: Water},
	{Lon: 72.8489, Lat: 31.4533, Class: Water},
	{Lon: 72.8421, Lat: 31.4587, Class: Water},
	{Lon: 72.8550, Lat: 31.4479, Class: Water},
	{Lon: 72.8368, Lat: 31.4642, Class: Water},
	{Lon: 72.8612, Lat: 31.4431, Class: Water},
	{Lon: 73.0702, Lat: 31.2377, Class: Water},
	{Lon: 73.0335, Lat: 31.2650, Class: Water},
	{Lon: 72.8305, Lat: 31.4690, Class: Water},
	{Lon: 72.8677, Lat: 31.4380, Class: Water},
	{Lon: 73.0760, Lat: 31.2330, Class: Water},
	{Lon: 73.0280, Lat: 31.2701, Class: Water},
	{Lon: 72.8244, Lat: 31.4742, Class: Water},
	{Lon: 72.8736, Lat: 31.4329, Class: Water},
	{Lon: 73.0820, Lat: 31.2288, Class: Water},
	{Lon: 73.0222, Lat: 31.2752, Class: Water},
}

var vegetationPoints = []Point{
	{Lon: 73.0150, Lat: 31.4650, Class: Vegetation},
	{Lon: 73.0212, Lat: 31.4712, Class: Vegetation},
	{Lon: 73.0088, Lat: 31.4588, Class: Vegetation},
	{Lon: 73.0277, Lat: 31.4770, Class: Vegetation},
	{Lon: 73.0022, Lat: 31.4521, Class: Vegetation},
	{Lon: 73.1505, Lat: 31.4905, Class: Vegetation},
	{Lon: 73.1561, Lat: 31.4958, Class: Vegetation},
	{Lon: 73.1448, Lat: 31.4850, Class: Vegetation},
	{Lon: 73.1620, Lat: 31.5011, Class: Vegetation},
	{Lon: 73.1390, Lat: 31.4798, Class: Vegetation},
	{Lon: 73.0340, Lat: 31.4830, Class: Vegetation},
	{Lon: 72.9955, Lat: 31.4460, Class: Vegetation},
	{Lon: 73.1680, Lat: 31.5066, Class: Vegetation},
	{Lon: 73.1330, Lat: 31.4744, Class: Vegetation},
	{Lon: 73.0402, Lat: 31.4888, Class: Vegetation},
	{Lon: 72.9890, Lat: 31.4400, Class: Vegetation},
	{Lon: 73.1741, Lat: 31.5120, Class: Vegetation},
	{Lon: 73.1272, Lat: 31.4692, Class: Vegetation},
	{Lon: 73.0463, Lat: 31.4944, Class: Vegetation},
	{Lon: 72.9826, Lat: 31.4341, Class: Vegetation},
}

// DefaultPoints merges the four fixed class point sets.
func DefaultPoints() []Point {
	points := make([]Point, 0, len(urbanPoints)+len(agriculturePoints)+len(waterPoints)+len(vegetationPoints))
	points = append(points, urbanPoints...)
	points = append(points, agriculturePoints...)
	points = append(points, waterPoints...)
	points = append(points, vegetationPoints...)
	return points
}
