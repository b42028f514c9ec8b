package ledger

// RecommendedBedtime derives the bedtime that yields targetSleep hours
// before wakeTime, with bufferMin minutes of sleep-onset latency added to
// the required time in bed. The result is wrapped into [0,24); a bedtime of
// 23.5 means 23:30 the previous evening.
func RecommendedBedtime(targetSleep, wakeTime, bufferMin float64) float64 {
	bedtime := wakeTime - targetSleep - bufferMin/60
	for bedtime < 0 {
		bedtime += 24
	}
	return bedtime
}

// RecommendedBedtime applies the ledger's configured wake time and onset
// buffer.
func (l *Ledger) RecommendedBedtime(targetSleep float64) float64 {
	return RecommendedBedtime(targetSleep, l.cfg.WakeTime, l.cfg.OnsetBufferMin)
}

// NightlyRecovery returns tonight's extra-sleep recommendation for the given
// debt: the debt spread over a nominal week, capped at MaxNightlyRecovery.
// No extra is recommended at or below zero debt.
func (l *Ledger) NightlyRecovery(debt float64) (extra, targetTonight float64) {
	if debt <= 0 {
		return 0, l.cfg.Target
	}
	extra = debt / 7
	if extra > l.cfg.MaxNightlyRecovery {
		extra = l.cfg.MaxNightlyRecovery
	}
	return extra, l.cfg.Target + extra
}
