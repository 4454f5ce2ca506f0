package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/config"
	"github.com/KirkDiggler/rune-caster/internal/domain/combat"
	"github.com/KirkDiggler/rune-caster/internal/domain/runes"
	"github.com/KirkDiggler/rune-caster/internal/errors"
	"github.com/KirkDiggler/rune-caster/internal/events"
	"github.com/KirkDiggler/rune-caster/internal/geometry"
	"github.com/KirkDiggler/rune-caster/internal/repositories/spells"
	"github.com/KirkDiggler/rune-caster/internal/sandbox"
	"github.com/KirkDiggler/rune-caster/internal/services/caster"
)

const usage = `usage: spellctl <command> [flags]

commands:
  list                         list spells
  cast <key> [-dir x,y,z]      cast a spell from the scene's player
  import                       write catalog spells to redis
  runes [-seconds N]           place a rune in front of the player and run its lifetime
`

// App runs spellctl commands against the configured catalog, scene and
// optional Redis store.
type App struct {
	Config *config.Config
	Out    io.Writer

	// Repository overrides the Redis connection when set
	Repository spells.Repository

	client redis.UniversalClient
}

// Run dispatches args to a command
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Out, usage)
		return errors.InvalidArgument("command is required")
	}

	if err := a.connect(ctx); err != nil {
		return err
	}
	defer a.close()

	switch args[0] {
	case "list":
		return a.list(ctx)
	case "cast":
		return a.cast(ctx, args[1:])
	case "import":
		return a.importSpells(ctx)
	case "runes":
		return a.placeRunes(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.Out, usage)
		return nil
	default:
		fmt.Fprint(a.Out, usage)
		return errors.InvalidArgumentf("unknown command %q", args[0])
	}
}

func (a *App) connect(ctx context.Context) error {
	if a.Repository != nil {
		return nil
	}

	opts, err := a.Config.Redis.Options()
	if err != nil {
		return err
	}
	if opts == nil {
		log.Println("No Redis configured, using catalog file")
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Printf("Failed to connect to Redis at %s: %v", opts.Addr, err)
		log.Println("Falling back to catalog file")
		return nil
	}

	log.Printf("Connected to Redis at %s", opts.Addr)
	a.client = client
	a.Repository = spells.NewRedisRepository(&spells.RedisRepoConfig{Client: client})
	return nil
}

func (a *App) close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}
}

func (a *App) loadFile() (*catalog.File, error) {
	return catalog.LoadFile(a.Config.Spells.Catalog)
}

// spellbook builds from the repository when there is one, otherwise from the
// catalog file
func (a *App) spellbook(ctx context.Context) (*catalog.Spellbook, error) {
	registry := catalog.DefaultRegistry()
	if a.Repository != nil {
		return catalog.LoadSpellbook(ctx, registry, a.Repository)
	}

	file, err := a.loadFile()
	if err != nil {
		return nil, err
	}
	return catalog.NewSpellbook(registry, file)
}

func (a *App) list(ctx context.Context) error {
	var data []*catalog.SpellData
	if a.Repository != nil {
		stored, err := a.Repository.List(ctx)
		if err != nil {
			return err
		}
		data = stored
	} else {
		file, err := a.loadFile()
		if err != nil {
			return err
		}
		for i := range file.Spells {
			data = append(data, &file.Spells[i])
		}
	}

	for _, s := range data {
		fmt.Fprintf(a.Out, "%-16s %-12s %-8s augments=%d\n", s.Key, s.Shape.Type, s.Effect.Type, len(s.Augments))
	}
	return nil
}

func (a *App) cast(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.InvalidArgument("spell key is required")
	}
	key := args[0]

	fs := flag.NewFlagSet("cast", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	dirFlag := fs.String("dir", "", "cast direction as x,y,z (defaults to the caster's forward)")
	casterID := fs.String("caster", "player", "scene entity casting the spell")
	if err := fs.Parse(args[1:]); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid cast flags")
	}

	book, err := a.spellbook(ctx)
	if err != nil {
		return err
	}
	world, err := sandbox.LoadScene(a.Config.Spells.Scene, nil)
	if err != nil {
		return err
	}
	player, err := world.Get(*casterID)
	if err != nil {
		return err
	}

	input := &caster.CastInput{SpellKey: key, Caster: player}
	if *dirFlag != "" {
		dir, err := parseVec(*dirFlag)
		if err != nil {
			return err
		}
		input.Direction = &dir
	}

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeOnSpellHit, events.NewFuncListener("spellctl-hits", events.PriorityObservers,
		func(e events.Event) error {
			hit := e.(*events.SpellHitEvent)
			fmt.Fprintf(a.Out, "hit %s at %s\n", hit.Target.Name(), formatVec(hit.Point))
			return nil
		}))

	svc := caster.NewService(&caster.ServiceConfig{
		Spellbook: book,
		World:     world,
		EventBus:  bus,
	})

	result, err := svc.Cast(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "cast %s power=%g range=%g\n", result.SpellKey, result.Power, result.Range)
	if result.Missed {
		fmt.Fprintf(a.Out, "missed at %s\n", formatVec(result.MissPoint))
	}
	if !result.Missed && len(result.Hits) == 0 {
		fmt.Fprintln(a.Out, "no targets")
	}
	for _, hit := range result.Hits {
		if health, ok := sandbox.Behavior[*combat.Health](hit.Target); ok {
			fmt.Fprintf(a.Out, "%s HP=%g/%g\n", health.Name, health.Points(), health.Max)
		}
	}
	return nil
}

func (a *App) importSpells(ctx context.Context) error {
	if a.Repository == nil {
		return errors.New(errors.CodeUnavailable, "import requires REDIS_URL or REDIS_ADDR")
	}

	file, err := a.loadFile()
	if err != nil {
		return err
	}

	// fail before writing anything when the catalog does not build
	if _, err := catalog.NewSpellbook(catalog.DefaultRegistry(), file); err != nil {
		return err
	}

	for i := range file.Spells {
		data := &file.Spells[i]
		err := a.Repository.Create(ctx, data)
		if errors.IsAlreadyExists(err) {
			err = a.Repository.Update(ctx, data)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to import %s", data.Key)
		}
		fmt.Fprintf(a.Out, "imported %s\n", data.Key)
	}
	return nil
}

func (a *App) placeRunes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runes", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	seconds := fs.Float64("seconds", runes.DefaultLifetime, "simulated seconds")
	step := fs.Float64("step", 1, "simulation step in seconds")
	dirFlag := fs.String("dir", "0,-1,1", "placement direction as x,y,z")
	slot := fs.Int("slot", 1, "rune slot to place")
	if err := fs.Parse(args); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid runes flags")
	}
	if *step <= 0 {
		return errors.InvalidArgument("step must be positive")
	}

	dir, err := parseVec(*dirFlag)
	if err != nil {
		return err
	}

	file, err := a.loadFile()
	if err != nil {
		return err
	}
	book, err := catalog.NewSpellbook(catalog.DefaultRegistry(), file)
	if err != nil {
		return err
	}
	world, err := sandbox.LoadScene(a.Config.Spells.Scene, nil)
	if err != nil {
		return err
	}
	player, err := world.Get("player")
	if err != nil {
		return err
	}

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeOnRuneTriggered, events.NewFuncListener("spellctl-runes", events.PriorityObservers,
		func(e events.Event) error {
			r := e.(*events.RuneTriggeredEvent)
			fmt.Fprintf(a.Out, "rune %s triggered at %s\n", r.RuneName, formatVec(r.Position))
			return nil
		}))

	cfg := &runes.PlacerConfig{
		Types:    book.Runes(),
		World:    world,
		Spawner:  world,
		EventBus: bus,
	}
	if mana, ok := sandbox.Behavior[*combat.Mana](player); ok {
		cfg.Mana = mana
	}

	placer := runes.NewPlacer(cfg)
	if err := placer.Select(*slot); err != nil {
		return err
	}

	r, err := placer.Place(ctx, player.Position(), dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "placed %s at %s\n", r.Data.Name, formatVec(r.Position))
	if cfg.Mana != nil {
		fmt.Fprintf(a.Out, "mana %g/%g\n", cfg.Mana.Current(), cfg.Mana.Max())
	}

	for elapsed := 0.0; elapsed < *seconds; elapsed += *step {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := placer.Update(ctx, *step); err != nil {
			return err
		}
		if len(placer.Active()) == 0 {
			break
		}
	}

	fmt.Fprintf(a.Out, "active runes: %d\n", len(placer.Active()))
	return nil
}

func parseVec(s string) (geometry.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vec3{}, errors.InvalidArgumentf("expected x,y,z, got %q", s)
	}

	var v geometry.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Vec3{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid vector component").
				WithMeta("value", p)
		}
		v[i] = f
	}
	return v, nil
}

func formatVec(v geometry.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
