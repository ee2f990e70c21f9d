package timezone

// zones is the reference list shown in the profile display settings, ordered
// by standard offset. Offset is the standard (non-DST) offset in hours.
var zones = []Zone{
	{Label: "Pacific/Midway", Offset: -11, Name: "Pacific/Midway"},
	{Label: "Hawaii", Offset: -10, Name: "Pacific/Honolulu"},
	{Label: "Alaska", Offset: -9, Name: "America/Anchorage"},
	{Label: "Pacific Time", Offset: -8, Name: "America/Los_Angeles"},
	{Label: "Arizona", Offset: -7, Name: "America/Phoenix"},
	{Label: "Mountain Time", Offset: -7, Name: "America/Denver"},
	{Label: "Central Time", Offset: -6, Name: "America/Chicago"},
	{Label: "Mexico City", Offset: -6, Name: "America/Mexico_City"},
	{Label: "Eastern Time", Offset: -5, Name: "America/New_York"},
	{Label: "Bogota", Offset: -5, Name: "America/Bogota"},
	{Label: "Atlantic Time", Offset: -4, Name: "America/Halifax"},
	{Label: "Newfoundland", Offset: -3.5, Name: "America/St_Johns"},
	{Label: "Buenos Aires", Offset: -3, Name: "America/Argentina/Buenos_Aires"},
	{Label: "Sao Paulo", Offset: -3, Name: "America/Sao_Paulo"},
	{Label: "Mid-Atlantic", Offset: -2, Name: "Atlantic/South_Georgia"},
	{Label: "Azores", Offset: -1, Name: "Atlantic/Azores"},
	{Label: "Coordinated Universal Time", Offset: 0, Name: "UTC"},
	{Label: "London", Offset: 0, Name: "Europe/London"},
	{Label: "Berlin", Offset: 1, Name: "Europe/Berlin"},
	{Label: "Paris", Offset: 1, Name: "Europe/Paris"},
	{Label: "Lagos", Offset: 1, Name: "Africa/Lagos"},
	{Label: "Athens", Offset: 2, Name: "Europe/Athens"},
	{Label: "Cairo", Offset: 2, Name: "Africa/Cairo"},
	{Label: "Johannesburg", Offset: 2, Name: "Africa/Johannesburg"},
	{Label: "Moscow", Offset: 3, Name: "Europe/Moscow"},
	{Label: "Nairobi", Offset: 3, Name: "Africa/Nairobi"},
	{Label: "Tehran", Offset: 3.5, Name: "Asia/Tehran"},
	{Label: "Dubai", Offset: 4, Name: "Asia/Dubai"},
	{Label: "Kabul", Offset: 4.5, Name: "Asia/Kabul"},
	{Label: "Karachi", Offset: 5, Name: "Asia/Karachi"},
	{Label: "India Standard Time", Offset: 5.5, Name: "Asia/Kolkata"},
	{Label: "Kathmandu", Offset: 5.75, Name: "Asia/Kathmandu"},
	{Label: "Dhaka", Offset: 6, Name: "Asia/Dhaka"},
	{Label: "Bangkok", Offset: 7, Name: "Asia/Bangkok"},
	{Label: "Singapore", Offset: 8, Name: "Asia/Singapore"},
	{Label: "Beijing", Offset: 8, Name: "Asia/Shanghai"},
	{Label: "Tokyo", Offset: 9, Name: "Asia/Tokyo"},
	{Label: "Adelaide", Offset: 9.5, Name: "Australia/Adelaide"},
	{Label: "Sydney", Offset: 10, Name: "Australia/Sydney"},
	{Label: "Noumea", Offset: 11, Name: "Pacific/Noumea"},
	{Label: "Auckland", Offset: 12, Name: "Pacific/Auckland"},
	{Label: "Tongatapu", Offset: 13, Name: "Pacific/Tongatapu"},
}
