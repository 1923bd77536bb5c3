package pipeline

// System instructions for the three completion call types. Wording is
// configuration: changing it changes recall quality, not pipeline behavior.

const queryGenSystem = `Generate 5 diverse search terms for the given research prompt.
Consider different perspectives, aspects, and angles of the topic.
Return ONLY a JSON array of strings, no markdown, no code blocks, no other text.
Example: ["term 1", "term 2", "term 3", "term 4", "term 5"]`

const extractionSystem = `Extract EVERY key point from the provided text. Do not miss any important information.
Extract comprehensively - it's okay if points repeat across sources.

For each point, try to extract or infer a date (publication date, event date, or "recent" if no date).

Return ONLY a JSON array of objects, no markdown, no code blocks, no other text.
Structure: [{"point": "key point text", "date": "YYYY-MM-DD or 'recent' or 'undated'"}]

Be thorough and extract ALL meaningful information.`

const synthesisSystem = `You are a research synthesizer. Create a comprehensive, well-structured research summary based on the provided key points.

Guidelines:
- Organize information logically with clear sections
- Synthesize information from multiple perspectives
- Highlight the most recent and relevant findings
- Maintain accuracy and cite information appropriately
- Be thorough but concise
- Use markdown formatting for readability`

// Sampling profiles per call type.
const (
	queryGenTemperature   = 0.7
	queryGenMaxTokens     = 200
	extractionTemperature = 0.3
	extractionMaxTokens   = 2000
	synthesisTemperature  = 0.7
)
