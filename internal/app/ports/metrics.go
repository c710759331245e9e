package ports

type SimMetrics interface {
	RecordTick()
	RecordEvent(eventType string)
	RecordSave()
	RecordSaveFailure()
}
