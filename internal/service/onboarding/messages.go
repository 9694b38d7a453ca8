package onboarding

// Member-directed guidance. The chat adapter renders these; buttons and
// formatting are its concern.
const (
	msgWelcome = "Welcome! Press Start below when you're ready to begin your onboarding."

	msgAskEmail = "Great! Reply with the school email you applied with (name@school.edu)."

	msgEmailAccepted = "Thanks! Your application is with the chapter for review. " +
		"We'll message you here as soon as there's a decision."

	msgAskPhoto = "You've been approved! 🎉 Reply with one photo of yourself " +
		"for the member directory to finish up."

	msgCompleted = "You're all set. Welcome to the chapter!"

	msgRejected = "Your application was not approved this time. " +
		"Reach out to the recruitment chair if you have questions."
)
