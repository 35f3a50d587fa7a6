// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog declares every configuration key known to the tracking
// server and builds the process-wide registry from them.
package catalog

import (
	"sync"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

var global = keys.Scopes(keys.Global)

// Protocol listeners.
var (
	ProtocolAddress = keys.MustSuffix[string](".address",
		"Network interface for the protocol. If not specified, server will bind all interfaces.",
		global)
	ProtocolPort = keys.MustSuffix[int](".port",
		"Port number for the protocol. Most protocols use TCP on the transport layer. Some protocols use UDP. "+
			"Some support both TCP and UDP.",
		global)
	ProtocolTimeout = keys.MustSuffix[int](".timeout",
		"Connection timeout value in seconds. Because sometimes there is no way to detect lost TCP connection "+
			"old connections stay in open state. On most systems there is a limit on number of open connection, "+
			"so this leads to problems with establishing new connections when number of devices is high or "+
			"devices data connections are unstable.",
		global)
)

// Server.
var (
	ServerTimeout = keys.MustKey[int]("server.timeout",
		"Server wide connection timeout value in seconds. See protocol timeout for more information.",
		global)
	ServerStatistics = keys.MustKey[string]("server.statistics",
		"Address for uploading aggregated anonymous usage statistics. Uploaded information is the same you can "+
			"see on the statistics screen in the web app. It does not include any sensitive (e.g. locations).",
		global)
)

// Events.
var (
	EventEnable = keys.MustKey[bool]("event.enable",
		"Enable events subsystem. Flag to enable all events handlers.",
		global)
	EventOverspeedNotRepeat = keys.MustKey[bool]("event.overspeed.notRepeat",
		"If true, the event is generated once at the beginning of overspeeding period.",
		global)
	EventOverspeedMinimalDuration = keys.MustKey[int64]("event.overspeed.minimalDuration",
		"Minimal over speed duration to trigger the event. Value in seconds.",
		global)
	EventOverspeedPreferLowest = keys.MustKey[bool]("event.overspeed.preferLowest",
		"Relevant only for geofence speed limits. Use lowest speed limits from all geofences.",
		global)
	EventIgnoreDuplicateAlerts = keys.MustKey[bool]("event.ignoreDuplicateAlerts",
		"Do not generate alert event if same alert was present in last known location.",
		global)
	EventMotionProcessInvalidPositions = keys.MustKey[bool]("event.motion.processInvalidPositions",
		"If set to true, invalid positions will be considered for motion logic.",
		global)
	EventMotionSpeedThreshold = keys.MustKey[float64]("event.motion.speedThreshold",
		"If the speed is above specified value, the object is considered to be in motion. "+
			"Default value is 0.01 knots.",
		global, keys.WithDefault(0.01))
)

// Geofences.
var (
	GeofencePolylineDistance = keys.MustKey[float64]("geofence.polylineDistance",
		"Global polyline geofence distance. Within that distance from the polyline, point is considered within "+
			"the geofence. Each individual geofence can also has 'polylineDistance' attribute which will take "+
			"precedence.",
		global, keys.WithDefault(25.0))
)

// Database.
var (
	DatabaseDriverFile = keys.MustKey[string]("database.driverFile",
		"Path to the database driver file. Drivers for MySQL, PostgreSQL and H2 databases are included. "+
			"If you use one of those, you don't need to specify this parameter.",
		global)
	DatabaseDriver = keys.MustKey[string]("database.driver",
		"Database driver class. For H2 use 'org.h2.Driver'. MySQL driver class name is 'com.mysql.jdbc.Driver'.",
		global)
	DatabaseURL = keys.MustKey[string]("database.url",
		"Database connection URL. By default H2 database is used.",
		global)
	DatabaseUser = keys.MustKey[string]("database.user",
		"Database user name. Default administrator user for H2 database is 'sa'.",
		global)
	DatabasePassword = keys.MustKey[string]("database.password",
		"Database user password. Default password for H2 admin (sa) user is empty.",
		global)
	DatabaseChangelog = keys.MustKey[string]("database.changelog",
		"Path to the master changelog file.",
		global)
	DatabaseCheckConnection = keys.MustKey[string]("database.checkConnection",
		"SQL query to check connection status. Default value is 'SELECT 1'. "+
			"For Oracle database you can use 'SELECT 1 FROM DUAL'.",
		global, keys.WithDefault("SELECT 1"))
	DatabaseSaveOriginal = keys.MustKey[bool]("database.saveOriginal",
		"Store original HEX or string data as \"raw\" attribute in the corresponding position.",
		global)
	DatabaseRegisterUnknownDefaultCategory = keys.MustKey[string]("database.registerUnknown.defaultCategory",
		"Default category for auto-registered devices.",
		global)
	DatabaseRegisterUnknownDefaultGroupID = keys.MustKey[int64]("database.registerUnknown.defaultGroupId",
		"The group id assigned to auto-registered devices.",
		global)
	DatabaseRefreshDelay = keys.MustKey[int64]("database.refreshDelay",
		"Minimum device refresh timeout in seconds. Default timeout is 5 minutes.",
		global, keys.WithDefault[int64](300))
)

// Device status.
var (
	StatusTimeout = keys.MustKey[int64]("status.timeout",
		"If no data is reported by a device for the given amount of time, status changes from online to "+
			"unknown. Value is in seconds. Default timeout is 10 minutes.",
		global, keys.WithDefault[int64](600))
)

// Web interface.
var (
	WebAddress = keys.MustKey[string]("web.address",
		"Optional parameter to specify network interface for web interface to bind to. "+
			"By default server will bind to all available interfaces.",
		global)
	WebPort = keys.MustKey[int]("web.port",
		"Web interface TCP port number. By default port 8082 is used. To avoid specifying port in the browser "+
			"you can set it to 80 (default HTTP port).",
		global, keys.WithDefault(8082))
	WebTimeout = keys.MustKey[int64]("web.timeout",
		"WebSocket connection timeout in milliseconds. Default timeout is 10 minutes.",
		global, keys.WithDefault[int64](60000))
	WebRequestLogEnable = keys.MustKey[bool]("web.requestLog.enable",
		"Enable request log.",
		global)
	WebRequestLogPath = keys.MustKey[string]("web.requestLog.path",
		"Request log path. The path must include the string \"yyyy_mm_dd\", which is replaced with the actual "+
			"date when creating and rolling over the file. Example: ./logs/jetty-yyyy_mm_dd.request.log",
		global)
	WebRequestLogRetainDays = keys.MustKey[int]("web.requestLog.retainDays",
		"Set the number of days before rotated request log files are deleted.",
		global)
	WebDisableHealthCheck = keys.MustKey[bool]("web.disableHealthCheck",
		"Disable systemd health checks.",
		global)
	WebSameSiteCookie = keys.MustKey[string]("web.sameSiteCookie",
		"Sets SameSite cookie attribute value. Supported options: Lax, Strict, None.",
		global)
)

// Position forwarding.
var (
	ForwardEnable = keys.MustKey[bool]("forward.enable",
		"Enable positions forwarding to other web server.",
		global)
	ForwardURL = keys.MustKey[string]("forward.url",
		"URL to forward positions. Data is passed through URL parameters. For example, {uniqueId} for device "+
			"identifier, {latitude} and {longitude} for coordinates.",
		global)
	ForwardHeader = keys.MustKey[string]("forward.header",
		"Additional HTTP header, can be used for authorization.",
		global)
	ForwardJSON = keys.MustKey[bool]("forward.json",
		"Boolean value to enable forwarding in JSON format.",
		global)
	ForwardURLVariables = keys.MustKey[bool]("forward.urlVariables",
		"Boolean value to enable URL parameters in json mode. For example, {uniqueId} for device identifier, "+
			"{latitude} and {longitude} for coordinates.",
		global)
	ForwardRetryEnable = keys.MustKey[bool]("forward.retry.enable",
		"Position forwarding retrying enable. When enabled, additional attempts are made to deliver positions. "+
			"If initial delivery fails, because of an unreachable server or an HTTP response different from "+
			"'2xx', the software waits for 'forward.retry.delay' milliseconds to retry delivery. On subsequent "+
			"failures, this delay is duplicated. If forwarding is retried for 'forward.retry.count', retrying is "+
			"canceled and the position is dropped. Positions pending to be delivered are limited to "+
			"'forward.retry.limit'. If this limit is reached, positions get discarded.",
		global)
	ForwardRetryDelay = keys.MustKey[int]("forward.retry.delay",
		"Position forwarding retry first delay in milliseconds. Can be set to anything greater than 0. "+
			"Defaults to 100 milliseconds.",
		global, keys.WithDefault(100))
	ForwardRetryCount = keys.MustKey[int]("forward.retry.count",
		"Position forwarding retry maximum retries. Can be set to anything greater than 0. "+
			"Defaults to 10 retries.",
		global, keys.WithDefault(10))
	ForwardRetryLimit = keys.MustKey[int]("forward.retry.limit",
		"Position forwarding retry pending positions limit. Can be set to anything greater than 0. "+
			"Defaults to 100 positions.",
		global, keys.WithDefault(100))
)

// Reports.
var (
	ReportPeriodLimit = keys.MustKey[int64]("report.periodLimit",
		"Maximum time period for reports in seconds. Can be useful to prevent users to request unreasonably "+
			"long reports. By default there is no limit.",
		global)
	ReportTripMinimalTripDistance = keys.MustKey[int64]("report.trip.minimalTripDistance",
		"Trips less than minimal duration and minimal distance are ignored. "+
			"300 seconds and 500 meters are default.",
		global, keys.WithDefault[int64](500))
	ReportTripMinimalTripDuration = keys.MustKey[int64]("report.trip.minimalTripDuration",
		"Trips less than minimal duration and minimal distance are ignored. "+
			"300 seconds and 500 meters are default.",
		global, keys.WithDefault[int64](300))
	ReportTripMinimalParkingDuration = keys.MustKey[int64]("report.trip.minimalParkingDuration",
		"Parking less than minimal duration does not cut trip. Default 300 seconds.",
		global, keys.WithDefault[int64](300))
	ReportTripMinimalNoDataDuration = keys.MustKey[int64]("report.trip.minimalNoDataDuration",
		"Gaps of more than specified time are counted as stops. Default value is one hour.",
		global, keys.WithDefault[int64](3600))
	ReportTripUseIgnition = keys.MustKey[bool]("report.trip.useIgnition",
		"Flag to enable ignition use for trips calculation.",
		global)
)

// Position filtering.
var (
	FilterEnable = keys.MustKey[bool]("filter.enable",
		"Boolean flag to enable or disable position filtering.",
		global)
	FilterInvalid = keys.MustKey[bool]("filter.invalid",
		"Filter invalid (valid field is set to false) positions.",
		global)
	FilterZero = keys.MustKey[bool]("filter.zero",
		"Filter zero coordinates. Zero latitude and longitude are theoretically valid values, but in practice "+
			"it usually indicates invalid GPS data.",
		global)
	FilterDuplicate = keys.MustKey[bool]("filter.duplicate",
		"Filter duplicate records (duplicates are detected by time value).",
		global)
	FilterFuture = keys.MustKey[int64]("filter.future",
		"Filter records with fix time in future. The value is specified in seconds. Records that have fix "+
			"time more than specified number of seconds later than current server time would be filtered out.",
		global)
	FilterAccuracy = keys.MustKey[int]("filter.accuracy",
		"Filter positions with accuracy less than specified value in meters.",
		global)
	FilterApproximate = keys.MustKey[bool]("filter.approximate",
		"Filter cell and wifi locations that are coming from geolocation provider.",
		global)
	FilterStatic = keys.MustKey[bool]("filter.static",
		"Filter positions with exactly zero speed values.",
		global)
	FilterDistance = keys.MustKey[int]("filter.distance",
		"Filter records by distance. The value is specified in meters. If the new position is less far than "+
			"this value from the last one it gets filtered out.",
		global)
	FilterMaxSpeed = keys.MustKey[int]("filter.maxSpeed",
		"Filter records by Maximum Speed value in knots. Can be used to filter jumps to far locations even if "+
			"they're marked as valid. Shouldn't be too low. Start testing with values at about 25000.",
		global)
	FilterMinPeriod = keys.MustKey[int]("filter.minPeriod",
		"Filter position if time from previous position is less than specified value in seconds.",
		global)
	FilterSkipLimit = keys.MustKey[int64]("filter.skipLimit",
		"Time limit for the filtering in seconds. If the time difference between last position and a new one "+
			"is more than this limit, the new position will not be filtered out.",
		global)
	FilterSkipAttributesEnable = keys.MustKey[bool]("filter.skipAttributes.enable",
		"Enable attributes skipping. Attribute skipping can be enabled in the config or device attributes.",
		keys.Scopes(keys.Device, keys.Global))
)

// Time and coordinates correction.
var (
	TimeOverride = keys.MustKey[string]("time.override",
		"Override device time. Possible values are 'deviceTime' and 'serverTime'.",
		global)
	TimeProtocols = keys.MustKey[string]("time.protocols",
		"List of protocols for overriding time. If not specified override is applied globally. List consist "+
			"of protocol names that can be separated by comma or single space character.",
		global)
	CoordinatesFilter = keys.MustKey[bool]("coordinates.filter",
		"Replaces coordinates with last known if change is less than a 'coordinates.minError' meters or more "+
			"than a 'coordinates.maxError' meters. Helps to avoid coordinates jumps during parking period or "+
			"jumps to zero coordinates.",
		global)
	CoordinatesMinError = keys.MustKey[int]("coordinates.minError",
		"Distance in meters. Distances below this value gets handled like explained in 'coordinates.filter'.",
		global)
	CoordinatesMaxError = keys.MustKey[int]("coordinates.maxError",
		"Distance in meters. Distances above this value gets handled like explained in 'coordinates.filter', "+
			"but only if Position is also marked as 'invalid'.",
		global)
)

// Position processing.
var (
	ProcessingRemoteAddressEnable = keys.MustKey[bool]("processing.remoteAddress.enable",
		"Enable to save device IP addresses information. Disabled by default.",
		global)
	ProcessingEngineHoursEnable = keys.MustKey[bool]("processing.engineHours.enable",
		"Enable engine hours calculation on the server side. It uses ignition value to determine engine state.",
		global)
	ProcessingCopyAttributesEnable = keys.MustKey[bool]("processing.copyAttributes.enable",
		"Enable copying of missing attributes from last position to the current one. Might be useful if device "+
			"doesn't send some values in every message.",
		global)
	ProcessingComputedAttributesEnable = keys.MustKey[bool]("processing.computedAttributes.enable",
		"Enable computed attributes processing.",
		global)
	ProcessingComputedAttributesDeviceAttributes = keys.MustKey[bool]("processing.computedAttributes.deviceAttributes",
		"Enable computed attributes processing.",
		global)
)

// Reverse geocoding.
var (
	GeocoderEnable = keys.MustKey[bool]("geocoder.enable",
		"Boolean flag to enable or disable reverse geocoder.",
		global)
	GeocoderType = keys.MustKey[string]("geocoder.type",
		"Reverse geocoder type. Check reverse geocoding documentation for more info. By default (if the value "+
			"is not specified) server uses Google API.",
		global)
	GeocoderURL = keys.MustKey[string]("geocoder.url",
		"Geocoder server URL. Applicable only to Nominatim and Gisgraphy providers.",
		global)
	GeocoderID = keys.MustKey[string]("geocoder.id",
		"App id for use with Here provider.",
		global)
	GeocoderKey = keys.MustKey[string]("geocoder.key",
		"Provider API key. Most providers require API keys.",
		global)
	GeocoderLanguage = keys.MustKey[string]("geocoder.language",
		"Language parameter for providers that support localization (e.g. Google and Nominatim).",
		global)
	GeocoderFormat = keys.MustKey[string]("geocoder.format",
		"Address format string. Default value is %h %r, %t, %s, %c. See AddressFormat for more info.",
		global, keys.WithDefault("%h %r, %t, %s, %c"))
	GeocoderCacheSize = keys.MustKey[int]("geocoder.cacheSize",
		"Cache size for geocoding results.",
		global)
	GeocoderIgnorePositions = keys.MustKey[bool]("geocoder.ignorePositions",
		"Disable automatic reverse geocoding requests for all positions.",
		global)
	GeocoderProcessInvalidPositions = keys.MustKey[bool]("geocoder.processInvalidPositions",
		"Boolean flag to apply reverse geocoding to invalid positions.",
		global)
	GeocoderReuseDistance = keys.MustKey[int]("geocoder.reuseDistance",
		"Optional parameter to specify minimum distance for new reverse geocoding request. If distance is "+
			"less than specified value (in meters), then last known address is reused.",
		global)
)

// Geolocation and speed limits.
var (
	GeolocationEnable = keys.MustKey[bool]("geolocation.enable",
		"Boolean flag to enable LBS location resolution. Some devices send cell towers information and WiFi "+
			"point when GPS location is not available. Coordinates can be determined based on that information "+
			"using third party services. Default value is false.",
		global)
	GeolocationType = keys.MustKey[string]("geolocation.type",
		"Provider to use for LBS location. Available options: google, mozilla and opencellid. By default "+
			"opencellid is used. You have to supply a key that you get from corresponding provider.",
		global)
	GeolocationURL = keys.MustKey[string]("geolocation.url",
		"Geolocation provider API URL address. Not required for most providers.",
		global)
	GeolocationKey = keys.MustKey[string]("geolocation.key",
		"Provider API key. OpenCellID service requires API key.",
		global)
	GeolocationProcessInvalidPositions = keys.MustKey[bool]("geolocation.processInvalidPositions",
		"Boolean flag to apply geolocation to invalid positions.",
		global)
	SpeedLimitEnable = keys.MustKey[bool]("speedLimit.enable",
		"Boolean flag to enable speed limit API to get speed limit values depending on location. "+
			"Default value is false.",
		global)
	SpeedLimitType = keys.MustKey[string]("speedLimit.type",
		"Provider to use for speed limit. Available options: overpass. By default overpass is used.",
		global)
	SpeedLimitURL = keys.MustKey[string]("speedLimit.url",
		"Speed limit provider API URL address.",
		global)
)

// Location correction.
var (
	LocationLatitudeHemisphere = keys.MustKey[string]("location.latitudeHemisphere",
		"Override latitude sign / hemisphere. Useful in cases where value is incorrect because of device bug. "+
			"Value can be N for North or S for South.",
		global)
	LocationLongitudeHemisphere = keys.MustKey[string]("location.longitudeHemisphere",
		"Override longitude sign / hemisphere. Useful in cases where value is incorrect because of device bug. "+
			"Value can be E for East or W for West.",
		global)
)

// All returns every declaration in documentation order.
func All() []keys.Descriptor {
	return []keys.Descriptor{
		ProtocolAddress, ProtocolPort, ProtocolTimeout,
		ServerTimeout, ServerStatistics,
		EventEnable, EventOverspeedNotRepeat, EventOverspeedMinimalDuration, EventOverspeedPreferLowest,
		EventIgnoreDuplicateAlerts, EventMotionProcessInvalidPositions, EventMotionSpeedThreshold,
		GeofencePolylineDistance,
		DatabaseDriverFile, DatabaseDriver, DatabaseURL, DatabaseUser, DatabasePassword, DatabaseChangelog,
		DatabaseCheckConnection, DatabaseSaveOriginal, DatabaseRegisterUnknownDefaultCategory,
		DatabaseRegisterUnknownDefaultGroupID, DatabaseRefreshDelay,
		StatusTimeout,
		WebAddress, WebPort, WebTimeout,
		ForwardEnable, ForwardURL, ForwardHeader, ForwardJSON, ForwardURLVariables,
		ForwardRetryEnable, ForwardRetryDelay, ForwardRetryCount, ForwardRetryLimit,
		ReportPeriodLimit, ReportTripMinimalTripDistance, ReportTripMinimalTripDuration,
		ReportTripMinimalParkingDuration, ReportTripMinimalNoDataDuration, ReportTripUseIgnition,
		FilterEnable, FilterInvalid, FilterZero, FilterDuplicate, FilterFuture, FilterAccuracy,
		FilterApproximate, FilterStatic, FilterDistance, FilterMaxSpeed, FilterMinPeriod, FilterSkipLimit,
		FilterSkipAttributesEnable,
		TimeOverride, TimeProtocols,
		CoordinatesFilter, CoordinatesMinError, CoordinatesMaxError,
		ProcessingRemoteAddressEnable, ProcessingEngineHoursEnable, ProcessingCopyAttributesEnable,
		ProcessingComputedAttributesEnable, ProcessingComputedAttributesDeviceAttributes,
		GeocoderEnable, GeocoderType, GeocoderURL, GeocoderID, GeocoderKey, GeocoderLanguage, GeocoderFormat,
		GeocoderCacheSize, GeocoderIgnorePositions, GeocoderProcessInvalidPositions, GeocoderReuseDistance,
		GeolocationEnable, GeolocationType, GeolocationURL, GeolocationKey, GeolocationProcessInvalidPositions,
		SpeedLimitEnable, SpeedLimitType, SpeedLimitURL,
		LocationLatitudeHemisphere, LocationLongitudeHemisphere,
		WebRequestLogEnable, WebRequestLogPath, WebRequestLogRetainDays, WebDisableHealthCheck,
		WebSameSiteCookie,
	}
}

var registry = sync.OnceValue(func() *keys.Registry {
	r, err := keys.NewRegistry(All()...)
	if err != nil {
		panic(err)
	}
	return r
})

// Registry returns the process-wide registry. It is built on first use and
// panics if the catalogue declares a name twice.
func Registry() *keys.Registry {
	return registry()
}
