package render

import "fmt"

// GenerateCSS generates the stage color variables and the rules using them
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --stage-bg: %s;
  --stage-text: %s;
  --stage-text-muted: %s;
  --stage-border: %s;
  --stage-accent: %s;
  --stage-accent-contrast: %s;
}

.stage {
  background-color: var(--stage-bg);
  color: var(--stage-text);
  border: 1px solid var(--stage-border);
  transition: background-color 0.2s;
}

.stage .label, .stage .hint {
  color: var(--stage-text-muted);
}

.stage-object.selected {
  outline: 2px dashed var(--stage-accent);
  outline-offset: 4px;
}

.stage-object .handle {
  background-color: var(--stage-accent);
  color: var(--stage-accent-contrast);
}
`, colors.Background, colors.Text, colors.TextMuted, colors.Border,
		colors.Accent, colors.AccentContrast)
}
