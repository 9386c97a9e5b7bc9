package sqlinline

const QUpsertUserByEmail = `--sql 013912ad-9529-450f-ad47-393311887f29
insert into users (id, email, created_at)
values ($1, $2, now())
on conflict (email) do update set email = excluded.email
returning id, email, coalesce(name, ''), coalesce(company, ''), coalesce(role, ''), created_at;
`

const QSelectUserByEmail = `--sql 979afaf8-669d-4801-8369-8352d073ea08
select id, email, coalesce(name, ''), coalesce(company, ''), coalesce(role, ''), created_at
from users
where email = $1;
`
