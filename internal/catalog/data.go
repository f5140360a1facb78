package catalog

import (
	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/types"
)

// The default tables below are the embedded catalog. They are cloned into
// each Catalog at construction so a YAML overlay never mutates package
// state.

func defaultAffirmations() map[emotion.Category][]string {
	return map[emotion.Category][]string{
		emotion.Happy: {
			"I deserve to feel happy and celebrate my joy. My positive energy is a gift to myself and others.",
			"I am grateful for this moment of happiness and I allow myself to fully experience it.",
			"My joy is valid and I can share it with others without guilt.",
			"I am worthy of happiness and I embrace the good moments in my life.",
			"I choose to focus on what brings me joy and let that light shine through.",
		},
		emotion.Sad: {
			"It's okay to feel sad. My emotions are valid, and this feeling will pass. I am strong and capable of healing.",
			"I give myself permission to feel my sadness without judgment. I am human, and all emotions are part of my experience.",
			"This sadness is temporary. I have overcome difficult times before, and I will again.",
			"I am not alone in my sadness. It's okay to reach out for support when I need it.",
			"My feelings matter, and I honor them. I will be gentle with myself during this time.",
		},
		emotion.Angry: {
			"I can feel my anger without letting it control me. I choose to respond thoughtfully and with compassion.",
			"My anger is a signal that something needs attention. I can address it constructively.",
			"I acknowledge my anger and give myself space to process it in healthy ways.",
			"I have the power to transform my anger into positive action.",
			"It's okay to feel angry. I can express my feelings without harming myself or others.",
		},
		emotion.Anxious: {
			"I am safe in this moment. My anxiety is temporary, and I have the tools to manage it. I can handle this.",
			"I breathe through my anxiety, knowing that this feeling will pass. I am stronger than my fears.",
			"I take things one step at a time. I don't have to solve everything right now.",
			"My anxiety does not define me. I am capable of finding calm even in difficult moments.",
			"I trust myself to handle whatever comes my way. I have survived difficult times before.",
		},
		emotion.Fear: {
			"I am safe and capable. Fear is a signal, not a sentence. I can move through this with courage and support.",
			"I acknowledge my fear without letting it paralyze me. I can take small steps forward.",
			"Fear is temporary. I have the strength to face what scares me, one moment at a time.",
			"I am braver than I think. My fear does not mean I am weak - it means I am human.",
			"I can feel afraid and still move forward. Courage is not the absence of fear, but action despite it.",
		},
		emotion.Stressed: {
			"I can manage stress one moment at a time. I give myself permission to pause and take care of myself.",
			"I don't have to do everything perfectly. I am doing my best, and that is enough.",
			"I can break down overwhelming tasks into smaller, manageable steps.",
			"I prioritize my well-being. Taking care of myself is not selfish - it's necessary.",
			"I release what I cannot control and focus on what I can influence right now.",
		},
		emotion.LowEnergy: {
			"My energy levels fluctuate, and that's normal. I can take small, gentle steps to support myself.",
			"I honor my body's need for rest. It's okay to slow down and take care of myself.",
			"I am doing enough, even when I feel low on energy. My worth is not measured by productivity.",
			"I can be gentle with myself during low-energy moments. Rest is productive.",
			"I listen to my body and give it what it needs, whether that's rest, movement, or nourishment.",
		},
		emotion.Neutral: {
			"I am present in this moment. I honor where I am and trust my journey.",
			"I am exactly where I need to be right now. There's no pressure to feel any particular way.",
			"I accept myself as I am in this moment, without judgment or expectation.",
			"I am open to whatever emotions arise, knowing they are all part of my human experience.",
			"I trust the process of my emotional journey. Every moment is valid and meaningful.",
		},
	}
}

func defaultSuggestions() map[emotion.Category]types.SuggestionSet {
	return map[emotion.Category]types.SuggestionSet{
		emotion.Happy: {
			Messages: []string{
				"I'm so glad to hear you're feeling good! Keep celebrating those good moments.",
				"Your positive energy is wonderful. What's bringing you joy today?",
				"That's amazing! I love seeing you happy. Hold on to what's making you smile.",
			},
			Actions: []string{
				"Share your good mood with someone you care about",
				"Write down what made today feel good",
				"Celebrate your wins, however small",
				"Take a moment of gratitude practice",
			},
			Tools:        []string{"gratitude_journal", "music_player", "mood_tracker"},
			Intervention: "gratitude_reflection",
		},
		emotion.Sad: {
			Messages: []string{
				"I'm here with you. It's okay to feel sad sometimes. Would you like to talk about it?",
				"I can sense you're going through a tough time. These feelings are temporary, and you're not alone.",
				"Your feelings are valid. Take all the time you need, and be gentle with yourself.",
			},
			Actions: []string{
				"Listen to uplifting music",
				"Try a 5-minute breathing exercise",
				"Reach out to someone you trust",
				"Read positive affirmations",
			},
			Tools:        []string{"music_player", "breathing_exercise", "affirmations", "journaling"},
			Intervention: "positive_memory_recall",
		},
		emotion.Angry: {
			Messages: []string{
				"I understand you're feeling frustrated. Let's work through this together, one breath at a time.",
				"It's okay to feel angry. Your emotions are valid. Want to tell me what's bothering you?",
				"I hear you. Sometimes things can be really frustrating. Let's find a way to process this.",
			},
			Actions: []string{
				"Try a calming breathing technique",
				"Listen to relaxing instrumental music",
				"Step away from the situation for a few minutes",
				"Write down what triggered the anger",
			},
			Tools:        []string{"breathing_exercise", "music_player", "journaling"},
			Intervention: "breathing_reset",
		},
		emotion.Anxious: {
			Messages: []string{
				"I notice you might be feeling anxious. Let's take this one step at a time together.",
				"Anxiety can be overwhelming, but you're not alone. Would a grounding exercise help right now?",
				"I'm here with you. Remember to breathe. You're safe, and this feeling will pass.",
			},
			Actions: []string{
				"Try a guided grounding exercise",
				"Listen to calming nature sounds",
				"Practice slow box breathing",
				"Name what you can control right now",
			},
			Tools:        []string{"grounding_exercise", "breathing_exercise", "music_player"},
			Intervention: "grounding_54321",
		},
		emotion.Fear: {
			Messages: []string{
				"I understand you're feeling afraid. Fear can be overwhelming, but you're safe here.",
				"It's okay to feel fear. Let's work through this together at your pace.",
				"Fear is a natural response. You've handled hard moments before, and you can handle this one.",
			},
			Actions: []string{
				"Practice a short breathing reset",
				"Ground yourself using your senses",
				"Talk through what's scaring you with someone you trust",
				"Remind yourself of a time you got through something hard",
			},
			Tools:        []string{"breathing_exercise", "grounding_exercise", "affirmations"},
			Intervention: "breathing_reset",
		},
		emotion.Stressed: {
			Messages: []string{
				"It sounds like a lot is weighing on you. Let's take a pause together.",
				"Stress can pile up quietly. You're allowed to slow down and take care of yourself.",
				"One thing at a time. Let's find one small step that makes right now easier.",
			},
			Actions: []string{
				"Release tension with a quick body exercise",
				"Break one big task into smaller steps",
				"Listen to ambient background sounds",
				"Take a short walk away from screens",
			},
			Tools:        []string{"body_scan", "task_breakdown", "music_player"},
			Intervention: "shoulder_relaxation",
		},
		emotion.LowEnergy: {
			Messages: []string{
				"Low energy days are real. Be gentle with yourself - rest counts as progress.",
				"Your body might be asking for something. A small, kind step is enough today.",
				"It's okay to move slowly. Let's find one gentle thing that might help.",
			},
			Actions: []string{
				"Do a gentle 2-minute stretch",
				"Drink a glass of water",
				"Step outside for fresh air or light",
				"Note one thing you're grateful for",
			},
			Tools:        []string{"gratitude_journal", "gentle_movement", "music_player"},
			Intervention: "quick_gratitude",
		},
		emotion.Neutral: {
			Messages: []string{
				"Thanks for checking in. How has your day been so far?",
				"I'm here whenever you need. Is there anything on your mind?",
				"I appreciate you taking a moment for yourself. What would feel good right now?",
			},
			Actions: []string{
				"Take a mindful breathing minute",
				"Listen to ambient sounds",
				"Do a quick self check-in",
				"Read a daily inspiration",
			},
			Tools:        []string{"breathing_exercise", "music_player", "mood_tracker"},
			Intervention: "gratitude_reflection",
		},
	}
}

func defaultInterventions() map[string]types.Intervention {
	return map[string]types.Intervention{
		"breathing_reset": {
			Key:             "breathing_reset",
			Name:            "10-Second Breathing Reset",
			Description:     "A quick breathing exercise to reset your nervous system",
			DurationSeconds: 10,
			Steps: []string{
				"Take a deep breath in through your nose (count to 4)",
				"Hold your breath gently (count to 2)",
				"Exhale slowly through your mouth (count to 4)",
				"Repeat 2-3 times",
			},
			Icon:        "breath",
			Category:    "breathing",
			TargetRoute: "/breathing?pattern=box&mode=quick",
		},
		"grounding_54321": {
			Key:             "grounding_54321",
			Name:            "5-4-3-2-1 Grounding Technique",
			Description:     "Ground yourself in the present moment using your senses",
			DurationSeconds: 60,
			Steps: []string{
				"Name 5 things you can SEE around you",
				"Name 4 things you can TOUCH or feel",
				"Name 3 things you can HEAR",
				"Name 2 things you can SMELL",
				"Name 1 thing you can TASTE or one thing you're grateful for",
			},
			Icon:        "globe",
			Category:    "grounding",
			TargetRoute: "/wellness?focus=grounding",
		},
		"calming_countdown": {
			Key:             "calming_countdown",
			Name:            "15-Second Calming Countdown",
			Description:     "A quick countdown to help you pause and reset",
			DurationSeconds: 15,
			Steps: []string{
				"Close your eyes or soften your gaze",
				"Count down slowly from 15 to 1",
				"With each number, take a gentle breath",
				"When you reach 1, take one more deep breath and open your eyes",
			},
			Icon:        "timer",
			Category:    "mindfulness",
			TargetRoute: "/wellness?focus=calm",
		},
		"shoulder_relaxation": {
			Key:             "shoulder_relaxation",
			Name:            "Shoulder Relaxation",
			Description:     "Quick tension release for your shoulders and neck",
			DurationSeconds: 30,
			Steps: []string{
				"Sit or stand comfortably",
				"Raise your shoulders up toward your ears",
				"Hold for 3 seconds",
				"Release and let them drop naturally",
				"Repeat 3-5 times",
			},
			Icon:        "massage",
			Category:    "body",
			TargetRoute: "/wellness?focus=movement",
		},
		"quick_gratitude": {
			Key:             "quick_gratitude",
			Name:            "Quick Gratitude Reflection",
			Description:     "A brief moment to acknowledge something you're grateful for",
			DurationSeconds: 30,
			Steps: []string{
				"Take a moment to think of one thing you're grateful for today",
				"It can be big or small - a person, an experience, or even a moment",
				"Hold that feeling of gratitude for a few seconds",
				"Notice how it feels in your body",
			},
			Icon:        "pray",
			Category:    "reflection",
			TargetRoute: "/gratitude",
		},
		"positive_memory_recall": {
			Key:             "positive_memory_recall",
			Name:            "Positive Memory Recall",
			Description:     "Recall a positive memory to shift your emotional state",
			DurationSeconds: 60,
			Steps: []string{
				"Think of a specific positive memory - a time you felt happy, proud, or at peace",
				"Recall as many details as you can: sights, sounds, feelings",
				"Notice the emotions that come with this memory",
				"Take a moment to really feel those positive emotions",
				"Know that you can access this feeling again",
			},
			Icon:        "thought",
			Category:    "reflection",
			TargetRoute: "/memory",
		},
		"gratitude_reflection": {
			Key:             "gratitude_reflection",
			Name:            "Gratitude Reflection",
			Description:     "Reflect on things you're grateful for",
			DurationSeconds: 60,
			Steps: []string{
				"Think of 3 things you're grateful for right now",
				"They can be simple: a warm bed, a friend, a good meal",
				"Take a moment to really feel the gratitude for each",
				"Notice how gratitude feels in your body",
			},
			Icon:        "pray",
			Category:    "reflection",
			TargetRoute: "/gratitude",
		},
	}
}

func defaultInterventionFor() map[emotion.Category]string {
	return map[emotion.Category]string{
		emotion.Angry:     "breathing_reset",
		emotion.Anxious:   "grounding_54321",
		emotion.Fear:      "breathing_reset",
		emotion.Stressed:  "shoulder_relaxation",
		emotion.Sad:       "positive_memory_recall",
		emotion.LowEnergy: "quick_gratitude",
		emotion.Happy:     "gratitude_reflection",
		emotion.Neutral:   "gratitude_reflection",
	}
}

func defaultRoutines() map[string]types.Routine {
	return map[string]types.Routine{
		"morning_boost": {
			Key:         "morning_boost",
			Name:        "Morning Boost Routine",
			Description: "Start your day with energy and positivity",
			Duration:    "15-20 minutes",
			Steps: []string{
				"Wake up and take 3 deep breaths",
				"Stretch your body gently for 2-3 minutes",
				"Write down 3 things you're grateful for",
				"Listen to uplifting music while getting ready",
				"Set one positive intention for the day",
			},
			Icon:    "sunrise",
			BestFor: []string{"low_energy", "neutral", "happy"},
		},
		"stress_relief": {
			Key:         "stress_relief",
			Name:        "Stress Relief Routine",
			Description: "Comprehensive routine to reduce stress and find calm",
			Duration:    "20-30 minutes",
			Steps: []string{
				"Find a quiet space and sit comfortably",
				"Practice 5 minutes of deep breathing (4-7-8 technique)",
				"Do a quick body scan, releasing tension from head to toe",
				"Listen to calming music or nature sounds",
				"Write down what's causing stress and one small action you can take",
				"End with a moment of self-compassion",
			},
			Icon:    "wave",
			BestFor: []string{"stressed", "anxious", "sad", "angry"},
		},
		"anxiety_cool_down": {
			Key:         "anxiety_cool_down",
			Name:        "Anxiety Cool-Down Routine",
			Description: "Step-by-step approach to calm anxiety",
			Duration:    "15-20 minutes",
			Steps: []string{
				"Acknowledge your anxiety without judgment",
				"Practice the 5-4-3-2-1 grounding technique",
				"Do 5 minutes of box breathing (4-4-4-4)",
				"Progressive muscle relaxation: tense and release each muscle group",
				"Listen to calming ambient sounds",
				"Remind yourself: \"This feeling will pass. I am safe.\"",
			},
			Icon:    "leaf",
			BestFor: []string{"anxious", "fear"},
		},
		"sleep_wind_down": {
			Key:         "sleep_wind_down",
			Name:        "Sleep Wind-Down Routine",
			Description: "Prepare your mind and body for restful sleep",
			Duration:    "30-45 minutes",
			Steps: []string{
				"Dim the lights and reduce screen time",
				"Practice gentle stretching or yoga",
				"Do 10 minutes of 4-7-8 breathing",
				"Listen to sleep-inducing music or nature sounds",
				"Write down any worries in a journal (to release them)",
				"Read something calming or practice gratitude",
				"Create a peaceful sleep environment",
			},
			Icon:    "moon",
			BestFor: []string{"stressed", "anxious", "low_energy"},
		},
		"confidence_boost": {
			Key:         "confidence_boost",
			Name:        "Confidence Boost Routine",
			Description: "Build self-confidence and positive self-talk",
			Duration:    "15 minutes",
			Steps: []string{
				"Stand in a power pose for 2 minutes",
				"Write down 3 things you've accomplished recently",
				"Recite positive affirmations about your strengths",
				"Visualize a time you felt confident and capable",
				"Listen to empowering music",
				"Set one small, achievable goal for today",
			},
			Icon:    "muscle",
			BestFor: []string{"sad", "low_energy", "neutral"},
		},
		"general_wellness": {
			Key:         "general_wellness",
			Name:        "General Wellness Routine",
			Description: "Maintain overall emotional well-being",
			Duration:    "15-20 minutes",
			Steps: []string{
				"Check in with yourself: How am I feeling right now?",
				"Practice 5 minutes of mindful breathing",
				"Do a brief gratitude reflection",
				"Engage in a gentle activity you enjoy",
				"End with a moment of self-compassion",
			},
			Icon:    "heart",
			BestFor: []string{"neutral", "happy"},
		},
	}
}

func defaultRoutineFor() map[emotion.Category]string {
	return map[emotion.Category]string{
		emotion.Happy:     "morning_boost",
		emotion.Sad:       "stress_relief",
		emotion.Angry:     "stress_relief",
		emotion.Anxious:   "anxiety_cool_down",
		emotion.Fear:      "anxiety_cool_down",
		emotion.Stressed:  "stress_relief",
		emotion.LowEnergy: "morning_boost",
		emotion.Neutral:   "general_wellness",
	}
}

func defaultMusic() map[string]types.MusicSet {
	return map[string]types.MusicSet{
		"calm": {
			Category:    "calm",
			Description: "Soothing music to promote relaxation and peace",
			Suggestions: []types.MusicTrack{
				{Title: "Weightless", Artist: "Marconi Union", Type: "youtube", Description: "Scientifically proven to reduce anxiety"},
				{Title: "Meditation Music", Artist: "Various Artists", Type: "youtube", Description: "Peaceful instrumental music for meditation"},
				{Title: "Peaceful Piano", Artist: "Spotify Playlist", Type: "spotify", Description: "Gentle piano melodies for calm"},
			},
		},
		"focus": {
			Category:    "focus",
			Description: "Music to help you concentrate and stay focused",
			Suggestions: []types.MusicTrack{
				{Title: "Focus Music: Concentration", Artist: "Various Artists", Type: "youtube", Description: "Instrumental music for deep focus"},
				{Title: "Study Music", Artist: "Various Artists", Type: "youtube", Description: "Background music for studying"},
			},
		},
		"happy": {
			Category:    "happy",
			Description: "Upbeat and joyful music to enhance positive mood",
			Suggestions: []types.MusicTrack{
				{Title: "Happy", Artist: "Pharrell Williams", Type: "youtube", Description: "Uplifting and energetic"},
				{Title: "Can't Stop the Feeling", Artist: "Justin Timberlake", Type: "youtube", Description: "Feel-good pop music"},
				{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", Type: "youtube", Description: "Classic upbeat song"},
			},
		},
		"comfort": {
			Category:    "comfort",
			Description: "Gentle, comforting music for emotional support",
			Suggestions: []types.MusicTrack{
				{Title: "River Flows in You", Artist: "Yiruma", Type: "youtube", Description: "Beautiful, soothing piano"},
				{Title: "Someone Like You", Artist: "Adele", Type: "youtube", Description: "Emotional and comforting"},
				{Title: "Comforting Instrumental", Artist: "Various Artists", Type: "youtube", Description: "Soft, gentle sounds"},
			},
		},
		"sleep": {
			Category:    "sleep",
			Description: "Music and sounds to help you fall asleep",
			Suggestions: []types.MusicTrack{
				{Title: "Rain Sounds for Sleep", Artist: "Nature Sounds", Type: "youtube", Description: "Gentle rain for deep sleep"},
				{Title: "Calm Meditation Music", Artist: "Various Artists", Type: "youtube", Description: "Peaceful music for sleep"},
				{Title: "Ocean Waves", Artist: "Nature Sounds", Type: "youtube", Description: "Soothing ocean sounds"},
			},
		},
		"ambient": {
			Category:    "ambient",
			Description: "Ambient sounds for background and relaxation",
			Suggestions: []types.MusicTrack{
				{Title: "Ambient Study Music", Artist: "Various Artists", Type: "youtube", Description: "Peaceful background music"},
				{Title: "Peaceful Background Sounds", Artist: "Various Artists", Type: "youtube", Description: "Calm ambient atmosphere"},
				{Title: "Nature Sounds: Forest", Artist: "Nature Sounds", Type: "youtube", Description: "Gentle forest ambience"},
			},
		},
	}
}

func defaultMusicFor() map[emotion.Category]string {
	return map[emotion.Category]string{
		emotion.Happy:     "happy",
		emotion.Sad:       "comfort",
		emotion.Angry:     "calm",
		emotion.Anxious:   "calm",
		emotion.Fear:      "calm",
		emotion.Stressed:  "ambient",
		emotion.LowEnergy: "happy",
		emotion.Neutral:   "ambient",
	}
}
