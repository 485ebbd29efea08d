package components

import (
	"course-market/internal/infra/payment"
	"course-market/internal/infra/readstore"
	"course-market/internal/infra/repository"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(queries.OfferingReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewEnrollmentReadStore,
			fx.As(new(queries.EnrollmentReadStore)),
		),
		fx.Annotate(
			readstore.NewReferralReadStore,
			fx.As(new(queries.ReferralReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewOfferingRepository,
			fx.As(new(commands.OfferingStore)),
		),
		fx.Annotate(
			repository.NewEnrollmentRepository,
			fx.As(new(commands.EnrollmentRepository)),
		),
		fx.Annotate(
			repository.NewWaitlistRepository,
			fx.As(new(commands.WaitlistRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository), new(commands.CouponStore)),
		),
		fx.Annotate(
			repository.NewReferralRepository,
			fx.As(new(commands.ReferralRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			payment.NewSimulator,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
