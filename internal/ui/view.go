package ui

// View renders the current state of the model to a string. Nothing is drawn
// once the loop has finished or the terminal stopped accepting frames.
func View(m Model) string {
	if m.outcome.Done() || m.drawErr != nil {
		return ""
	}

	tv := TimerView{
		Width:     m.width,
		Percent:   m.frame.Percent,
		Remaining: m.frame.Remaining,
		StartedAt: m.run.StartWallClock,
		Title:     m.spec.Title(),
		Format:    m.spec.Format,
		Gradient:  m.gradient,
	}
	return tv.Render() + "\n\n" + m.help.View(m.keys)
}
