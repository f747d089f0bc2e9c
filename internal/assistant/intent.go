package assistant

import "regexp"

var (
	documentRe  = regexp.MustCompile(`(?i)document|plan|report|summary`)
	imageRe     = regexp.MustCompile(`(?i)generate.*?image`)
	outfitAskRe = regexp.MustCompile(`(?i)generate.*outfit.*image`)
	// First sentence-like span of the completion that reads as an outfit
	// image instruction, terminated by '.', '!' or a newline.
	outfitPromptRe = regexp.MustCompile(`(?i)(Generate.*outfit.*?)[.!\n]`)
)

// Decision captures what should happen after a completion: whether to render
// the reply into a document, whether to call image generation, and with what
// prompt.
type Decision struct {
	WantsDocument bool
	WantsImage    bool
	// ImagePrompt is the instruction lifted verbatim from the completion when
	// the user asked for an outfit image. Empty means the caller falls back to
	// the original message.
	ImagePrompt string
}

// Classify derives a Decision from the user's original message and the
// completion text. hasImage reports whether an image was uploaded with this
// request; the outfit-prompt extraction only applies then.
//
// Document intent is a plain substring match, so "reportage" counts. The
// extracted outfit prompt forces WantsImage regardless of whether the original
// message matched on its own. Pure function, no I/O.
func Classify(message, completion string, hasImage bool) Decision {
	d := Decision{
		WantsDocument: documentRe.MatchString(message),
		WantsImage:    imageRe.MatchString(message),
	}
	if hasImage && outfitAskRe.MatchString(message) {
		if m := outfitPromptRe.FindStringSubmatch(completion); m != nil {
			d.ImagePrompt = m[1]
			d.WantsImage = true
		}
	}
	return d
}
