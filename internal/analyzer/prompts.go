package analyzer

const featuresPrompt = `You are analyzing transcripts from a YouTube channel.
Identify the %d most prominent product features, topics or recurring content elements discussed.

Respond with ONLY a JSON array, no prose:
[{"feature": "short name", "category": "topic category", "confidence": "high|medium|low"}]

Transcripts:
%s`

const sentimentPrompt = `You are analyzing viewer comments from a YouTube channel.
Find the recurring complaints, unmet needs or requests, and the single most requested feature or topic.

Respond with ONLY a JSON object, no prose:
{"complaints": [{"text": "theme", "frequency": "high|medium|low"}], "mostRequestedFeature": "short description"}

Comments:
%s`

const hooksPrompt = `You are analyzing the titles of recent videos from a YouTube channel.
Describe the messaging hooks the creator relies on to attract viewers.

Respond with ONLY a JSON object, no prose:
{"primaryHook": "main hook", "secondaryHooks": ["hook", "hook"], "strategy": "one sentence"}

Titles:
%s`
