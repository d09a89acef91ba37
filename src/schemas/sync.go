package schemas

type SyncRecords struct {
	Students  []map[string]string `json:"students"`
	Modules   []map[string]string `json:"modules"`
	Resources []map[string]string `json:"resources"`
}

type SyncData struct {
	Students  int         `json:"students"`
	Modules   int         `json:"modules"`
	Resources int         `json:"resources"`
	Records   SyncRecords `json:"records"`
}

// SyncResult is the body of a successful GET /sync.
type SyncResult struct {
	Status        string   `json:"status"`
	Timestamp     string   `json:"timestamp"`
	SyncLogID     int      `json:"sync_log_id"`
	RecordsSynced int      `json:"records_synced"`
	FailedRecords int      `json:"failed_records"`
	Data          SyncData `json:"data"`
}

type SyncErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
