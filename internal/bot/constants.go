package bot

// Ответы бота
const (
	startText        = "🤖 Controller Bot Ready!\nUse /post to create a post with buttons or /createpost to build a post from a template."
	notAllowedText   = "❌ You are not allowed."
	postSentText     = "✅ Post Sent Successfully!"
	noTitleText      = "❌ Could not find title. The post must contain a line like 'ANIME: <title>'."
	noTemplateText   = "❌ Send the template after the command (/createpost <text>), as a photo caption or as a reply to the template."
	noDraftText      = "Use /post to create a post with buttons. See /help"
	cancelledText    = "🗑 Draft deleted."
	nothingToCancel  = "There is no draft to cancel."
	noChannelText    = "Channel is not set. Use /setchannel <username>"
	setChannelUsage  = "Usage: /setchannel <username>"
	wrongCommandText = "Unknown command. See /help"
)

const helpText = `📝 <b>COMMANDS</b>:
* /help – show this help
* /post – create a post with buttons step by step: text, button names and URLs, target chat
* /createpost – build a post from a template (the text after the command, a photo caption or a reply)
* /setchannel – set the channel for the "Join Channel" button (example: /setchannel @mychannel)
* /channel – show the current channel
* /cancel – delete the unfinished /post draft

<b>Template for /createpost</b>:
<code>ANIME: Title
SEASON: 1
EPISODES: 12
AUDIO: [Japanese]
QUALITY: 480p, 720p, 1080p
GENRES: Action, Drama
&gt; Synopsis
POWERED BY: @channel
https://link-480 https://link-720 https://link-1080</code>`

/*
Команды для BotFather:

help - show help
post - create a post with buttons
createpost - build a post from a template
setchannel - set the channel for the Join button
channel - show the current channel
cancel - delete the unfinished draft
*/
