package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyCPRMDBType string = "CPRM_DB_TYPE"
	EnvKeyCPRMDbPath string = "CPRM_DB_PATH"

	EnvKeyCPRMHttpHostPort string = "CPRM_HTTP_HOST_PORT"

	EnvKeyCPRMDefaultRate  string = "CPRM_DEFAULT_RATE"
	EnvKeyCPRMDefaultBurst string = "CPRM_DEFAULT_BURST"

	EnvKeyCPRMRedisAddr      string = "CPRM_REDIS_ADDR"
	EnvKeyCPRMAutoAckMinutes string = "CPRM_AUTO_ACK_MINUTES"
	EnvKeyCPRMStaleAfterSecs string = "CPRM_STALE_AFTER_SECONDS"

	LoggerNameHospitalCore  string = "hospital_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameRedisMirror   string = "redis_mirror"

	LoggerFieldCategory       string = "category"
	LoggerCategoryRegistry    string = "registry"
	LoggerCategoryFeed        string = "feed"
	LoggerCategoryLiveness    string = "liveness"
	LoggerCategorySubscriber  string = "subscriber"
	LoggerCategoryAlertMirror string = "alert_mirror"
)
