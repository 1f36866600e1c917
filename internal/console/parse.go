package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command.", Options: nil}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, status, regions, time, weather, teleport, wait, tick, save, load, reset.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	if wantsDuration(def.Canonical) {
		argsTokens, intent.Quantity = splitDuration(argsTokens)
	}

	resolvedArgs, clarify, argScore := resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		prompt, options := buildArgOptions(ctx, def.Canonical, 5)
		if len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{Prompt: prompt, Options: options}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "regions", "time":
		return Query
	default:
		return Command
	}
}

func wantsDuration(verb string) bool {
	return verb == "wait" || verb == "tick"
}

func splitDuration(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if q == nil {
			if candidate := parseDurationToken(token); candidate != nil {
				q = candidate
				// A bare number borrows the unit word that follows it,
				// so "30 minutes" does not read as 30 hours.
				if _, err := strconv.Atoi(token); err == nil && i+1 < len(tokens) {
					if hours, unit, ok := unitWord(tokens[i+1]); ok {
						q.Hours *= hours
						q.Unit = unit
						q.Raw = token + " " + tokens[i+1]
						i++
					}
				}
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	switch def.Canonical {
	case "weather":
		return resolveWeatherArgs(ctx, args)
	case "teleport":
		return resolveTeleportArgs(ctx, args)
	case "modregion":
		return resolveModRegionArgs(ctx, args)
	default:
		return args, nil, 0.9
	}
}

// resolveWeatherArgs reads "weather [region...] <type>": the final
// token names the weather type, everything before it the region. An
// omitted region means the one the player stands in.
func resolveWeatherArgs(ctx ParseContext, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	typeToken := args[len(args)-1]
	matches, typeScore, tie := bestMatches(typeToken, normaliseAll(ctx.WeatherTypes), nil)
	if len(matches) == 0 {
		return nil, &ClarifyQuestion{
			Prompt: fmt.Sprintf("%q is not a weather type I know.", typeToken),
		}, 0.4
	}
	if tie && len(matches) >= 2 {
		options := []Intent{
			{Kind: Command, Verb: "weather", Args: []string{matches[0]}, Confidence: typeScore},
			{Kind: Command, Verb: "weather", Args: []string{matches[1]}, Confidence: typeScore - 0.01},
		}
		return nil, &ClarifyQuestion{Prompt: "Which weather type?", Options: options}, 0.52
	}

	region, regionScore, clarify := resolveRegionTokens(ctx, "weather", args[:len(args)-1])
	if clarify != nil {
		return nil, clarify, 0.5
	}
	return []string{region, matches[0]}, nil, minScore(typeScore, regionScore)
}

func resolveTeleportArgs(ctx ParseContext, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	region, score, clarify := resolveRegionTokens(ctx, "teleport", args)
	if clarify != nil {
		return nil, clarify, 0.5
	}
	return []string{region}, nil, score
}

// resolveModRegionArgs reads "modregion [region...] <c0..c9>": the
// trailing run of numbers is the chance table, everything before it the
// region.
func resolveModRegionArgs(ctx ParseContext, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	split := len(args)
	for split > 0 {
		if _, err := strconv.Atoi(args[split-1]); err != nil {
			break
		}
		split--
	}
	numbers := args[split:]
	if len(numbers) != 10 {
		return nil, &ClarifyQuestion{
			Prompt: fmt.Sprintf("modregion needs 10 chance values, got %d.", len(numbers)),
		}, 0.4
	}

	region, score, clarify := resolveRegionTokens(ctx, "modregion", args[:split])
	if clarify != nil {
		return nil, clarify, 0.5
	}
	resolved := append([]string{region}, numbers...)
	return resolved, nil, score
}

// resolveRegionTokens maps region tokens onto a known region name. No
// tokens (or a "here" word) picks the player's current region.
func resolveRegionTokens(ctx ParseContext, verb string, tokens []string) (string, float64, *ClarifyQuestion) {
	if len(tokens) == 0 || (len(tokens) == 1 && isHereWord(tokens[0])) {
		current := normaliseInput(ctx.CurrentRegion)
		if current == "" {
			return "", 0, &ClarifyQuestion{Prompt: "You are in the wilderness; name a region."}
		}
		return current, 0.95, nil
	}

	joined := strings.Join(tokens, " ")
	boost := map[string]bool{}
	if current := normaliseInput(ctx.CurrentRegion); current != "" {
		boost[current] = true
	}
	matches, confidence, tie := bestMatches(joined, normaliseAll(ctx.Regions), boost)
	if tie && len(matches) >= 2 {
		options := []Intent{
			{Kind: Command, Verb: verb, Args: []string{matches[0]}, Confidence: confidence},
			{Kind: Command, Verb: verb, Args: []string{matches[1]}, Confidence: confidence - 0.01},
		}
		return "", 0, &ClarifyQuestion{Prompt: "Which region?", Options: options}
	}
	if len(matches) == 0 {
		return "", 0, &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not a region I know.", joined)}
	}
	return matches[0], confidence, nil
}

func bestMatches(token string, all []string, boost map[string]bool) ([]string, float64, bool) {
	token = normaliseInput(token)
	if token == "" || len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if boost[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildArgOptions(ctx ParseContext, verb string, maxOptions int) (string, []Intent) {
	var prompt string
	var pool []string
	switch verb {
	case "weather":
		prompt = "Which weather?"
		pool = ctx.WeatherTypes
	case "teleport":
		prompt = "Where to?"
		pool = ctx.Regions
	default:
		return "", nil
	}

	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range pool {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return prompt, options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n,
		"what s the weather", "whats the weather", "how s the sky", "hows the sky",
		"weather report", "where am i",
	) {
		return makeIntent(Query, "status", nil, 0.9)
	}
	if containsAnyPhrase(n, "what time is it", "what s the time", "whats the time") {
		return makeIntent(Query, "time", nil, 0.9)
	}
	if containsAnyPhrase(n, "show regions", "list the regions", "what regions are there") {
		return makeIntent(Query, "regions", nil, 0.88)
	}

	// "make it rain", "let it snow": force the type over the player's
	// region.
	for _, lead := range []string{"make it", "let it"} {
		if !containsPhrase(n, lead) {
			continue
		}
		parts := strings.SplitN(" "+n+" ", " "+lead+" ", 2)
		if len(parts) < 2 {
			continue
		}
		rest := tokenise(parts[1])
		if len(rest) == 0 {
			continue
		}
		matches, confidence, tie := bestMatches(rest[0], normaliseAll(ctx.WeatherTypes), nil)
		if len(matches) == 0 || tie {
			continue
		}
		region := normaliseInput(ctx.CurrentRegion)
		if region == "" {
			continue
		}
		return makeIntent(Command, "weather", []string{region, matches[0]}, minScore(0.84, confidence))
	}

	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func normaliseAll(values []string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		n := normaliseInput(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back as console input, for
// echoing clarify options.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
