package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func CopernicusClientID() string {
	return os.Getenv("COPERNICUS_CLIENT_ID")
}

func CopernicusClientSecret() string {
	return os.Getenv("COPERNICUS_CLIENT_SECRET")
}

func CopernicusTokenURL() string {
	return os.Getenv("COPERNICUS_TOKEN_URL")
}

func CopernicusProcessURL() string {
	if url := os.Getenv("COPERNICUS_PROCESS_URL"); url != "" {
		return url
	}
	return "https://sh.dataspace.copernicus.eu/api/v1/process"
}

func CopernicusCatalogURL() string {
	if url := os.Getenv("COPERNICUS_CATALOG_URL"); url != "" {
		return url
	}
	return "https://sh.dataspace.copernicus.eu/api/v1/catalog/1.0.0/search"
}

func ModelServiceURL() string {
	if url := os.Getenv("MODEL_SERVICE_URL"); url != "" {
		return url
	}
	return "http://localhost:8093"
}

func BoundaryShapefile() string {
	if path := os.Getenv("BOUNDARY_SHAPEFILE"); path != "" {
		return path
	}
	return RootPath() + "/data/boundaries/gadm41_2.shp"
}

func ExportFTPAddr() string {
	return os.Getenv("EXPORT_FTP_ADDR")
}

func ExportFTPUser() string {
	return os.Getenv("EXPORT_FTP_USER")
}

func ExportFTPPassword() string {
	return os.Getenv("EXPORT_FTP_PASSWORD")
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}

func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}

func DiscordWarnNotificationUrl() string {
	return os.Getenv("DISCORD_WARN_NOTIFICATION_URL")
}

type Color struct {
	R, G, B uint8
}

// ColorMap assigns the rendering palette per land cover class name.
var ColorMap = map[string]Color{
	"urban":       {200, 0, 0},
	"agriculture": {230, 200, 60},
	"water":       {0, 90, 200},
	"vegetation":  {20, 140, 40},
	"unknown":     {120, 120, 120},
}
