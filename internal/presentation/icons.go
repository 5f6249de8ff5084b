package presentation

const DefaultIcon = "cloud"

var conditionIcons = map[int]string{
	1000: "sun.max",
	1003: "cloud.sun",
	1006: "cloud.sun",
	1030: "cloud.fog",
	1135: "cloud.fog",
	1147: "cloud.fog",
	1063: "cloud.drizzle",
	1066: "cloud.drizzle",
	1069: "cloud.drizzle",
	1072: "cloud.drizzle",
	1150: "cloud.drizzle",
	1153: "cloud.drizzle",
	1168: "cloud.drizzle",
	1171: "cloud.drizzle",
	1180: "cloud.drizzle",
	1192: "cloud.drizzle",
	1195: "cloud.drizzle",
	1183: "cloud.rain",
	1186: "cloud.rain",
	1189: "cloud.rain",
	1087: "cloud.bolt",
	1114: "snow",
	1117: "snow",
	1198: "cloud.sleet",
	1201: "cloud.sleet",
	1204: "cloud.sleet",
	1207: "cloud.sleet",
	1210: "cloud.snow",
	1213: "cloud.snow",
	1216: "cloud.snow",
	1219: "cloud.snow",
	1222: "cloud.snow",
	1225: "cloud.snow",
	1237: "cloud.hail",
	1240: "cloud.sun.rain",
	1243: "cloud.sun.rain",
	1246: "cloud.sun.rain",
	1249: "cloud.sun.rain",
	1252: "cloud.sun.rain",
	1255: "cloud.sun.rain",
	1258: "cloud.sun.rain",
	1261: "cloud.sun.rain",
	1264: "cloud.sun.rain",
	1273: "cloud.bolt.rain",
	1276: "cloud.bolt.rain",
	1279: "cloud.bolt.snow",
	1282: "cloud.bolt.snow",
}

// IconForCode maps a weatherapi.com condition code to a symbol name.
func IconForCode(code int) string {
	if icon, ok := conditionIcons[code]; ok {
		return icon
	}
	return DefaultIcon
}
