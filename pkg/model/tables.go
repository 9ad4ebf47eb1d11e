package model

// Tables lists every entity table in creation order. The bootstrapper treats
// this as the expected table set.
func Tables() []string {
	return []string{
		CrawlSchedule{}.TableName(),
		VideoRecord{}.TableName(),
		NotificationLog{}.TableName(),
		CrawlExecutionLog{}.TableName(),
	}
}
