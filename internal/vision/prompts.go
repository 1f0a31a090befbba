package vision

// roomProfilePrompt asks the vision model for a structured description of
// the room itself, used to score the catalog.
const roomProfilePrompt = `Analyze this room image and provide a detailed analysis in the following JSON format:
{
    "room_type": "living/bedroom/dining/office",
    "style": "modern/minimal/traditional/scandinavian/industrial",
    "colors": ["color1", "color2", "color3"],
    "space_size": "small/medium/large",
    "lighting": "bright/natural/dim/artificial",
    "existing_furniture": ["item1", "item2"],
    "color_scheme": "warm/cool/neutral",
    "suggestions": "Brief suggestions for furniture placement"
}

Be specific and accurate. Focus on identifying:
1. The primary function of the room
2. The current design style
3. Available space for new furniture
4. Color palette
5. Existing furniture items

Return ONLY the JSON, no additional text.`

// furnitureSuggestionPrompt asks the vision model for concrete furniture
// proposals, which are then reconciled against the catalog.
const furnitureSuggestionPrompt = `Analyze this interior room image and provide a structured assessment.

Return ONLY valid JSON with this exact structure:
{
  "room_type": "living|bedroom|kitchen|dining|office",
  "style": "modern|minimal|traditional|industrial|scandinavian",
  "empty_spaces": [
    {
      "location": "description of empty area",
      "suitable_for": ["sofa", "table", "chair"]
    }
  ],
  "recommendations": [
    {
      "furniture_type": "sofa|table|chair|bed|cabinet|lamp",
      "category": "living|bedroom|dining|office",
      "reason": "why this furniture fits",
      "preferred_style": "minimal|modern|traditional"
    }
  ],
  "color_scheme": ["#hexcolor1", "#hexcolor2"],
  "confidence": 0.85
}

Focus on:
1. Accurately identify room type and existing style
2. Find 1-3 empty spaces that could accommodate furniture
3. Suggest 2-4 furniture pieces that would complement the space
4. Extract dominant color palette

Return ONLY the JSON, no additional text.`
