package greek

// Plain files are not templates.
func Plain() {}
